package reports

import (
	"context"
	"fmt"

	"github.com/stockeye/estoque-api/internal/application/query"
)

// UseCase monta relatórios a partir do serviço de consulta: PDF do estado do
// estoque e exportação XML do histórico. Somente leitura.
type UseCase struct {
	queryUC  *query.UseCase
	pdfGen   PDFGenerator
	exporter MovementExporter
}

// NewUseCase constrói o caso de uso.
func NewUseCase(queryUC *query.UseCase, pdfGen PDFGenerator, exporter MovementExporter) *UseCase {
	return &UseCase{queryUC: queryUC, pdfGen: pdfGen, exporter: exporter}
}

const defaultWindowDays = 30

// StockReportPDF gera o relatório do estoque: resumo, itens críticos e
// movimentações da janela.
func (uc *UseCase) StockReportPDF(ctx context.Context, windowDays int) ([]byte, error) {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	summary, err := uc.queryUC.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("relatório: resumo: %w", err)
	}
	critical, err := uc.queryUC.CriticalItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("relatório: itens críticos: %w", err)
	}
	movements, err := uc.queryUC.RecentMovements(windowDays, 0)
	if err != nil {
		return nil, fmt.Errorf("relatório: movimentações: %w", err)
	}
	return uc.pdfGen.GenerateStockReport(ctx, &StockReportData{
		Summary:   summary,
		Critical:  critical,
		Movements: movements,
		Window:    windowDays,
	})
}

// MovementsXML exporta as movimentações da janela em XML.
func (uc *UseCase) MovementsXML(windowDays int) ([]byte, error) {
	movements, err := uc.queryUC.RecentMovements(windowDays, 0)
	if err != nil {
		return nil, fmt.Errorf("exportação: movimentações: %w", err)
	}
	return uc.exporter.ExportMovements(movements)
}
