package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockeye/estoque-api/internal/domain"
	"github.com/stockeye/estoque-api/internal/domain/entity"
	"github.com/stockeye/estoque-api/internal/domain/repository"
	"github.com/stockeye/estoque-api/pkg/textutil"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = "id, name, category, description, quantity, min_threshold, critical_threshold, created_at, updated_at"

// ItemRepo implementação do ItemRepository sobre PostgreSQL (usável com pool ou tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste um item novo. Nome repetido devolve ErrDuplicateItem.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (name, name_folded, category, description, quantity, min_threshold, critical_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	description := (*string)(nil)
	if item.Description != "" {
		description = &item.Description
	}
	err := r.q.QueryRow(context.Background(), query,
		item.Name, textutil.Fold(item.Name), item.Category, description, item.Quantity,
		item.MinThreshold, item.CriticalThreshold, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateItem
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByName obtém um item pelo nome exato. Devolve nil, nil se não existir.
func (r *ItemRepo) GetByName(name string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name))
}

// GetByNameForUpdate obtém o item e bloqueia a linha (SELECT FOR UPDATE):
// movimentações concorrentes sobre o mesmo item ficam serializadas na tx.
func (r *ItemRepo) GetByNameForUpdate(name string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE name = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name))
}

// UpdateQuantity grava a nova quantidade do item.
func (r *ItemRepo) UpdateQuantity(itemID int64, quantity int) error {
	query := `UPDATE items SET quantity = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, itemID, quantity)
	if err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// List devolve todos os itens ordenados por nome.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// SearchByName busca por nome normalizado (sem acentos, caixa baixa). A coluna
// name_folded é gravada no Create com textutil.Fold, então banco e aplicação
// usam exatamente a mesma normalização.
func (r *ItemRepo) SearchByName(normalizedTerm string) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE name_folded LIKE '%' || $1 || '%' ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, normalizedTerm)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	var description *string
	err := row.Scan(
		&it.ID, &it.Name, &it.Category, &description, &it.Quantity,
		&it.MinThreshold, &it.CriticalThreshold, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	if description != nil {
		it.Description = *description
	}
	return &it, nil
}

func (r *ItemRepo) scanAll(rows pgx.Rows) ([]*entity.Item, error) {
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		var description *string
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Category, &description, &it.Quantity,
			&it.MinThreshold, &it.CriticalThreshold, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if description != nil {
			it.Description = *description
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
