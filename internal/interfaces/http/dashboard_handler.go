package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockeye/estoque-api/internal/application/dto"
	"github.com/stockeye/estoque-api/internal/application/query"
)

// DashboardHandler trata os endpoints do dashboard de estoque.
type DashboardHandler struct {
	uc *query.UseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *query.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devolve os contadores do estoque e das movimentações do dia.
// GET /api/dashboard/summary
//
// Resposta: SummaryResponse (total_items, items_in_stock, items_low,
// items_critical, movements_today, total_categories).
// Sem parâmetros; o recorte de "hoje" é calculado no servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}

// GetCritical devolve os itens no limiar crítico ou abaixo, os mais urgentes
// primeiro.
// GET /api/dashboard/critical
func (h *DashboardHandler) GetCritical(c *fiber.Ctx) error {
	items, err := h.uc.CriticalItems(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return c.JSON(out)
}
