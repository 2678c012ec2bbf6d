package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stockeye/estoque-api/internal/application/dto"
	"github.com/stockeye/estoque-api/internal/application/reports"
)

// ReportHandler trata a geração de relatórios e exportações (protegido).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockPDF godoc
// @Summary      Relatório de estoque em PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        days  query  int  false  "Janela de movimentações em dias (default 30)"
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	days := c.QueryInt("days")
	pdfBytes, err := h.uc.StockReportPDF(c.Context(), days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("estoque_%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// MovementsXML godoc
// @Summary      Exportar histórico de movimentações em XML
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Param        days  query  int  false  "Janela em dias (default 30)"
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/movements.xml [get]
func (h *ReportHandler) MovementsXML(c *fiber.Ctx) error {
	days := c.QueryInt("days")
	xmlBytes, err := h.uc.MovementsXML(days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("movimentacoes_%s.xml", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(xmlBytes)
}
