// Package pdf gera o relatório de estoque em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Relatório de Estoque + data de emissão             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: totais / em estoque / baixos / críticos            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Itens críticos (qtd | item | categoria | limiar)   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Movimentações da janela (data | item | tipo | qtd) │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/stockeye/estoque-api/internal/application/dto"
	"github.com/stockeye/estoque-api/internal/application/reports"
	"github.com/stockeye/estoque-api/internal/domain/entity"
)

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockReport gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(_ context.Context, data *reports.StockReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		WithAuthor("StockEye", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Window))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(data.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Itens críticos
	m.AddRows(sectionTitleRow("ITENS EM NÍVEL CRÍTICO"))
	if len(data.Critical) == 0 {
		m.AddRows(emptyRow("Nenhum item em nível crítico."))
	} else {
		m.AddRows(criticalHeaderRow())
		for _, r := range criticalRows(data.Critical) {
			m.AddRows(r)
		}
	}

	// Movimentações da janela
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitleRow(fmt.Sprintf("MOVIMENTAÇÕES (últimos %d dias)", data.Window)))
	if len(data.Movements) == 0 {
		m.AddRows(emptyRow("Nenhuma movimentação no período."))
	} else {
		m.AddRows(movementHeaderRow())
		for _, r := range movementRows(data.Movements) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título do relatório (esq) e data de emissão (dir).
func headerRow(window int) core.Row {
	emitted := time.Now().Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New("RELATÓRIO DE ESTOQUE", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("StockEye — Almoxarifado Hospitalar", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Emitido em: "+emitted, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Janela: %d dias", window), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: os seis contadores do resumo em uma linha.
func summaryRow(s *dto.SummaryResponse) core.Row {
	stat := func(label string, value int, c *props.Color) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", value), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: c, Top: 5,
			}),
		)
	}
	critColor := colorPrimary
	if s.ItemsCritical > 0 {
		critColor = colorAlert
	}
	return row.New(14).Add(
		stat("Itens", s.TotalItems, colorPrimary),
		stat("Com estoque", s.ItemsInStock, colorPrimary),
		stat("Abaixo do mínimo", s.ItemsLow, colorPrimary),
		stat("Críticos", s.ItemsCritical, critColor),
		stat("Mov. hoje", s.MovementsToday, colorPrimary),
		stat("Categorias", s.TotalCategories, colorPrimary),
	)
}

// sectionTitleRow: título de seção em destaque.
func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// emptyRow: placeholder quando a seção não tem dados.
func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
	))
}

// criticalHeaderRow: cabeçalho da tabela de itens críticos.
func criticalHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 2, align.Center),
		h("Item", 5, align.Left),
		h("Categoria", 3, align.Left),
		h("Limiar crítico", 2, align.Center),
	)
}

// criticalRows: uma linha por item crítico, quantidade em vermelho.
func criticalRows(items []*entity.Item) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: colorAlert},
			)),
			col.New(5).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				it.Category,
				props.Text{Size: 8, Align: align.Left, Top: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", it.CriticalThreshold),
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray},
			)),
		))
	}
	return result
}

// movementHeaderRow: cabeçalho da tabela de movimentações.
func movementHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Item", 4, align.Left),
		h("Tipo", 2, align.Center),
		h("Qtd.", 1, align.Center),
		h("Responsável", 3, align.Left),
	)
}

// movementRows: uma linha por movimentação.
func movementRows(movements []*entity.Movement) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mv := range movements {
		kindColor := colorPrimary
		if mv.Kind == entity.MovementKindSaida {
			kindColor = colorAlert
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				mv.CreatedAt.Format("02/01 15:04"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Color: colorGray},
			)),
			col.New(4).Add(text.New(
				mv.ItemName,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				mv.Kind,
				props.Text{Size: 7.5, Align: align.Center, Top: 1, Color: kindColor},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", mv.Quantity),
				props.Text{Size: 7.5, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				mv.Actor,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Color: colorGray},
			)),
		))
	}
	return result
}
