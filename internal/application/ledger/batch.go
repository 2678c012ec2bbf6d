package ledger

import (
	"context"

	"github.com/google/uuid"
)

// BatchOperation uma operação do lote: nome do item + magnitude positiva.
// Forma estruturada única, validada na borda — sem tolerância de chaves
// ambíguas no input.
type BatchOperation struct {
	ItemName string
	Quantity int
}

// BatchEntry resultado de uma operação do lote, na posição correspondente do
// input. Exatamente um de Result/Err fica preenchido.
type BatchEntry struct {
	ItemName string
	Result   *Result
	Err      error
}

// Success informa se a operação foi aplicada.
func (e BatchEntry) Success() bool { return e.Err == nil }

// CriticalItem item que ficou no limiar crítico ou abaixo após o lote.
type CriticalItem struct {
	ItemName        string
	CurrentQuantity int
}

// BatchResult resultado do lote: uma entrada por operação, na ordem do input,
// mais a lista derivada de itens críticos (coletada só das que aplicaram).
type BatchResult struct {
	BatchID       string
	Results       []BatchEntry
	CriticalItems []CriticalItem
}

// ApplyBatch aplica Apply a cada operação, independentemente e na ordem do
// input, com um único kind e um único ator. Lote best-effort, não transação:
// a falha de uma operação não bloqueia nem desfaz as demais, e sucesso parcial
// é o caso normal — o chamador inspeciona cada entrada.
//
// Lote vazio devolve resultados e lista crítica vazios, sem erro.
func (uc *UseCase) ApplyBatch(ctx context.Context, ops []BatchOperation, kind, actor string) (*BatchResult, error) {
	batch := &BatchResult{
		BatchID:       uuid.New().String(),
		Results:       make([]BatchEntry, 0, len(ops)),
		CriticalItems: []CriticalItem{},
	}

	for _, op := range ops {
		res, err := uc.Apply(ctx, Input{
			ItemName: op.ItemName,
			Kind:     kind,
			Quantity: op.Quantity,
			Actor:    actor,
			BatchID:  batch.BatchID,
		})
		if err != nil {
			batch.Results = append(batch.Results, BatchEntry{ItemName: op.ItemName, Err: err})
			continue
		}
		batch.Results = append(batch.Results, BatchEntry{ItemName: op.ItemName, Result: res})
		if res.IsCritical() {
			batch.CriticalItems = append(batch.CriticalItems, CriticalItem{
				ItemName:        res.Item,
				CurrentQuantity: res.CurrentQuantity,
			})
		}
	}
	return batch, nil
}
