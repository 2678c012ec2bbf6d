package entity

import "time"

// Item representa um insumo hospitalar rastreado pelo nome (chave de unicidade,
// comparação exata). A quantidade nunca fica negativa; toda mutação passa pelo
// ledger de movimentações.
//
// Invariante assumida pelas consultas: CriticalThreshold <= MinThreshold
// (estoque crítico é subconjunto de estoque baixo).
type Item struct {
	ID                int64
	Name              string
	Category          string
	Description       string
	Quantity          int
	MinThreshold      int
	CriticalThreshold int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
