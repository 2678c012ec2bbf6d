package entity

import "time"

// Operator é quem registra movimentações (enfermagem, farmácia, almoxarifado).
// O nome do operador vira o campo Actor dos movimentos.
type Operator struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	Name         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
