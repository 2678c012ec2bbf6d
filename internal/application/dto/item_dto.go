package dto

import "time"

// RegisterItemRequest body para POST /api/items.
type RegisterItemRequest struct {
	Name              string `json:"name"`
	Category          string `json:"category"`
	Description       string `json:"description,omitempty"`
	InitialQuantity   int    `json:"initial_quantity"`
	MinThreshold      int    `json:"min_threshold"`
	CriticalThreshold int    `json:"critical_threshold"`
}

// ItemResponse representação de um item nas respostas.
type ItemResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Description       string    `json:"description,omitempty"`
	Quantity          int       `json:"quantity"`
	MinThreshold      int       `json:"min_threshold"`
	CriticalThreshold int       `json:"critical_threshold"`
	Level             string    `json:"level"` // ok | baixo | critico
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
