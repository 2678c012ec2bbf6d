package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stockeye/estoque-api/internal/domain/entity"
	"github.com/stockeye/estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação do MovementRepository sobre PostgreSQL (usável
// com pool ou tx). A tabela movements é append-only; não existem métodos de
// update ou delete de propósito.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste um movimento imutável do histórico.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movements (item_id, kind, quantity, quantity_before, quantity_after, actor, supplier, destination, notes, batch_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.ItemID, m.Kind, m.Quantity, m.QuantityBefore, m.QuantityAfter,
		m.Actor, nullable(m.Supplier), nullable(m.Destination), nullable(m.Notes),
		nullable(m.BatchID), m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

const movementSelect = `
	SELECT m.id, m.item_id, i.name, m.kind, m.quantity, m.quantity_before, m.quantity_after,
	       m.actor, m.supplier, m.destination, m.notes, m.batch_id, m.created_at
	FROM movements m
	JOIN items i ON i.id = m.item_id`

// ListRecent lista movimentos com created_at >= since, mais recentes primeiro,
// com o nome do item resolvido via JOIN. limit <= 0 não limita.
func (r *MovementRepo) ListRecent(since time.Time, limit int) ([]*entity.Movement, error) {
	query := movementSelect + ` WHERE m.created_at >= $1 ORDER BY m.created_at DESC`
	args := []any{since}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByItem lista o histórico de um item, mais recente primeiro.
func (r *MovementRepo) ListByItem(itemID int64, limit, offset int) ([]*entity.Movement, error) {
	query := movementSelect + ` WHERE m.item_id = $1 ORDER BY m.created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by item: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var supplier, destination, notes, batchID *string
		if err := rows.Scan(
			&m.ID, &m.ItemID, &m.ItemName, &m.Kind, &m.Quantity,
			&m.QuantityBefore, &m.QuantityAfter, &m.Actor,
			&supplier, &destination, &notes, &batchID, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Supplier = deref(supplier)
		m.Destination = deref(destination)
		m.Notes = deref(notes)
		m.BatchID = deref(batchID)
		list = append(list, &m)
	}
	return list, rows.Err()
}
