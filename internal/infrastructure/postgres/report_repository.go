package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stockeye/estoque-api/internal/domain/entity"
	"github.com/stockeye/estoque-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de somente leitura sobre items + movements para o
// dashboard. Usa o pool direto: nada aqui precisa de transação.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository constrói o adaptador de consultas agregadas.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetSummary calcula todos os contadores do resumo em um único round-trip.
// items_critical é subconjunto de items_low pela invariante crítico <= mínimo.
func (r *ReportRepo) GetSummary(ctx context.Context, todayStart, todayEnd time.Time) (*repository.StockSummary, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM items)                                          AS total_items,
	    (SELECT COUNT(*) FROM items WHERE quantity > 0)                       AS items_in_stock,
	    (SELECT COUNT(*) FROM items WHERE quantity <= min_threshold)          AS items_low,
	    (SELECT COUNT(*) FROM items WHERE quantity <= critical_threshold)     AS items_critical,
	    (SELECT COUNT(*) FROM movements WHERE created_at BETWEEN $1 AND $2)   AS movements_today,
	    (SELECT COUNT(DISTINCT category) FROM items)                          AS total_categories`

	var s repository.StockSummary
	err := r.pool.QueryRow(ctx, query, todayStart, todayEnd).Scan(
		&s.TotalItems, &s.ItemsInStock, &s.ItemsLow, &s.ItemsCritical,
		&s.MovementsToday, &s.TotalCategories,
	)
	if err != nil {
		return nil, fmt.Errorf("report.GetSummary: %w", err)
	}
	return &s, nil
}

// ListCritical devolve os itens no limiar crítico ou abaixo, os mais urgentes
// primeiro (quantidade ascendente).
func (r *ReportRepo) ListCritical(ctx context.Context) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE quantity <= critical_threshold ORDER BY quantity ASC, name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.ListCritical: %w", err)
	}
	defer rows.Close()
	return (&ItemRepo{q: r.pool}).scanAll(rows)
}
