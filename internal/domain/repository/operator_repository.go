package repository

import "github.com/stockeye/estoque-api/internal/domain/entity"

// OperatorRepository define o porto de persistência de operadores.
type OperatorRepository interface {
	Create(operator *entity.Operator) error
	// FindByEmail devolve nil, nil quando não existe.
	FindByEmail(email string) (*entity.Operator, error)
	GetByID(id string) (*entity.Operator, error)
}
