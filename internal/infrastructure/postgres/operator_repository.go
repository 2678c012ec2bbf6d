package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockeye/estoque-api/internal/domain"
	"github.com/stockeye/estoque-api/internal/domain/entity"
	"github.com/stockeye/estoque-api/internal/domain/repository"
)

var _ repository.OperatorRepository = (*OperatorRepo)(nil)

// OperatorRepo implementação do OperatorRepository sobre PostgreSQL.
type OperatorRepo struct {
	q Querier
}

// NewOperatorRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewOperatorRepository(q Querier) *OperatorRepo {
	return &OperatorRepo{q: q}
}

// Create persiste um operador novo.
func (r *OperatorRepo) Create(op *entity.Operator) error {
	query := `
		INSERT INTO operators (id, email, password_hash, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		op.ID, op.Email, op.PasswordHash, op.Name, op.Status, op.CreatedAt, op.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert operator: %w", err)
	}
	return nil
}

// FindByEmail devolve nil, nil quando o e-mail não está cadastrado.
func (r *OperatorRepo) FindByEmail(email string) (*entity.Operator, error) {
	query := `
		SELECT id, email, password_hash, name, status, created_at, updated_at
		FROM operators WHERE email = $1`
	var op entity.Operator
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&op.ID, &op.Email, &op.PasswordHash, &op.Name, &op.Status, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find operator by email: %w", err)
	}
	return &op, nil
}

// GetByID obtém um operador por ID.
func (r *OperatorRepo) GetByID(id string) (*entity.Operator, error) {
	query := `
		SELECT id, email, password_hash, name, status, created_at, updated_at
		FROM operators WHERE id = $1`
	var op entity.Operator
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&op.ID, &op.Email, &op.PasswordHash, &op.Name, &op.Status, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operator: %w", err)
	}
	return &op, nil
}
