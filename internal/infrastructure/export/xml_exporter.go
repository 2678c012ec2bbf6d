// Package export serializa o histórico de movimentações em XML para
// integração com sistemas hospitalares (ERP do almoxarifado).
package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/stockeye/estoque-api/internal/application/reports"
	"github.com/stockeye/estoque-api/internal/domain/entity"
)

var _ reports.MovementExporter = (*XMLExporter)(nil)

// XMLExporter implementa reports.MovementExporter usando etree.
type XMLExporter struct{}

// NewXMLExporter constrói o exportador.
func NewXMLExporter() *XMLExporter { return &XMLExporter{} }

// ExportMovements monta o documento:
//
//	<Movimentacoes geradoEm="..." total="N">
//	  <Movimentacao id="..">
//	    <Item>...</Item> <Tipo>entrada|saida</Tipo> <Quantidade>..</Quantidade>
//	    <SaldoAnterior>..</SaldoAnterior> <SaldoAtual>..</SaldoAtual>
//	    <Responsavel>..</Responsavel> <Data>RFC3339</Data>
//	    campos opcionais: <Fornecedor> <Destino> <Observacao> <Lote>
//	  </Movimentacao>
//	</Movimentacoes>
func (e *XMLExporter) ExportMovements(movements []*entity.Movement) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Movimentacoes")
	root.CreateAttr("geradoEm", time.Now().Format(time.RFC3339))
	root.CreateAttr("total", strconv.Itoa(len(movements)))

	for _, mv := range movements {
		el := root.CreateElement("Movimentacao")
		el.CreateAttr("id", strconv.FormatInt(mv.ID, 10))
		el.CreateElement("Item").SetText(mv.ItemName)
		el.CreateElement("Tipo").SetText(mv.Kind)
		el.CreateElement("Quantidade").SetText(strconv.Itoa(mv.Quantity))
		el.CreateElement("SaldoAnterior").SetText(strconv.Itoa(mv.QuantityBefore))
		el.CreateElement("SaldoAtual").SetText(strconv.Itoa(mv.QuantityAfter))
		el.CreateElement("Responsavel").SetText(mv.Actor)
		el.CreateElement("Data").SetText(mv.CreatedAt.Format(time.RFC3339))
		if mv.Supplier != "" {
			el.CreateElement("Fornecedor").SetText(mv.Supplier)
		}
		if mv.Destination != "" {
			el.CreateElement("Destino").SetText(mv.Destination)
		}
		if mv.Notes != "" {
			el.CreateElement("Observacao").SetText(mv.Notes)
		}
		if mv.BatchID != "" {
			el.CreateElement("Lote").SetText(mv.BatchID)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: serializar XML: %w", err)
	}
	return out, nil
}
