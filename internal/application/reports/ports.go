package reports

import (
	"context"

	"github.com/stockeye/estoque-api/internal/application/dto"
	"github.com/stockeye/estoque-api/internal/domain/entity"
)

// StockReportData dados consolidados que entram no relatório.
type StockReportData struct {
	Summary   *dto.SummaryResponse
	Critical  []*entity.Item
	Movements []*entity.Movement
	Window    int // dias cobertos pela janela de movimentações
}

// PDFGenerator porto de saída para a geração do relatório em PDF.
type PDFGenerator interface {
	GenerateStockReport(ctx context.Context, data *StockReportData) ([]byte, error)
}

// MovementExporter porto de saída para exportação do histórico (XML para
// integração com sistemas hospitalares).
type MovementExporter interface {
	ExportMovements(movements []*entity.Movement) ([]byte, error)
}
