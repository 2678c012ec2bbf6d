package dto

import "time"

// ApplyMovementRequest body para POST /api/movements.
// Quantity é sempre a magnitude positiva; a direção vem de Kind.
type ApplyMovementRequest struct {
	ItemName    string `json:"item"`
	Kind        string `json:"kind"` // entrada | saida
	Quantity    int    `json:"quantity"`
	Supplier    string `json:"supplier,omitempty"`
	Destination string `json:"destination,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// MovementResultResponse eco de uma movimentação aplicada com sucesso.
// CriticalThreshold e IsCritical permitem ao chamador decidir o alerta de
// estoque crítico sem segunda consulta.
type MovementResultResponse struct {
	Item              string `json:"item"`
	Kind              string `json:"kind"`
	Quantity          int    `json:"quantity"`
	PreviousQuantity  int    `json:"previous_quantity"`
	CurrentQuantity   int    `json:"current_quantity"`
	CriticalThreshold int    `json:"critical_threshold"`
	IsCritical        bool   `json:"is_critical"`
}

// BatchOperation uma operação do lote: identificador do item + magnitude.
// Forma única e explícita; não há tolerância de chaves alternativas no body.
type BatchOperation struct {
	ItemName string `json:"item"`
	Quantity int    `json:"quantity"`
}

// ApplyBatchRequest body para POST /api/movements/batch.
// Kind único aplicado uniformemente a todas as operações, na ordem recebida.
type ApplyBatchRequest struct {
	Kind       string           `json:"kind"`
	Operations []BatchOperation `json:"operations"`
}

// BatchEntryResponse resultado de uma operação do lote (sucesso ou falha).
type BatchEntryResponse struct {
	Item    string                  `json:"item"`
	Success bool                    `json:"success"`
	Result  *MovementResultResponse `json:"result,omitempty"`
	Error   *ErrorResponse          `json:"error,omitempty"`
}

// CriticalAlert item que cruzou o limiar crítico dentro de um lote.
type CriticalAlert struct {
	Item            string `json:"item"`
	CurrentQuantity int    `json:"current_quantity"`
}

// ApplyBatchResponse resultado do lote: entradas na ordem de envio mais a lista
// derivada de itens críticos (somente operações bem-sucedidas).
type ApplyBatchResponse struct {
	BatchID       string               `json:"batch_id"`
	Results       []BatchEntryResponse `json:"results"`
	CriticalItems []CriticalAlert      `json:"critical_items"`
}

// MovementResponse um registro do histórico nas listagens.
type MovementResponse struct {
	ID             int64     `json:"id"`
	Item           string    `json:"item"`
	Kind           string    `json:"kind"`
	Quantity       int       `json:"quantity"`
	QuantityBefore int       `json:"quantity_before"`
	QuantityAfter  int       `json:"quantity_after"`
	Actor          string    `json:"actor"`
	Supplier       string    `json:"supplier,omitempty"`
	Destination    string    `json:"destination,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
