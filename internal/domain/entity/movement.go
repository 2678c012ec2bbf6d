package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovementKindEntrada = "entrada" // entrada de insumos (fornecedor, devolução)
	MovementKindSaida   = "saida"   // saída de insumos (setor, paciente)
)

// ValidMovementKind informa se kind é um tipo de movimentação conhecido.
func ValidMovementKind(kind string) bool {
	return kind == MovementKindEntrada || kind == MovementKindSaida
}

// Movement é um registro imutável do histórico: referencia o item, a direção,
// a magnitude (sempre positiva; a direção vem de Kind, nunca de sinal) e o
// par antes/depois da quantidade. Uma vez gravado, nunca é alterado.
type Movement struct {
	ID             int64
	ItemID         int64
	ItemName       string // preenchido em consultas com JOIN; não persiste na tabela
	Kind           string // entrada | saida
	Quantity       int
	QuantityBefore int
	QuantityAfter  int
	Actor          string
	Supplier       string
	Destination    string
	Notes          string
	BatchID        string // UUID do lote quando veio de ApplyBatch; vazio em avulsos
	CreatedAt      time.Time
}
