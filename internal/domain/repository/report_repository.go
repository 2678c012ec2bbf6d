package repository

import (
	"context"
	"time"

	"github.com/stockeye/estoque-api/internal/domain/entity"
)

// StockSummary contadores agregados do estoque para o dashboard.
type StockSummary struct {
	TotalItems      int
	ItemsInStock    int // quantidade > 0
	ItemsLow        int // quantidade <= estoque mínimo
	ItemsCritical   int // quantidade <= estoque crítico
	MovementsToday  int
	TotalCategories int
}

// ReportRepository consultas de somente leitura sobre catálogo + ledger.
// Não tem estado próprio; tudo deriva das tabelas items e movements.
type ReportRepository interface {
	// GetSummary calcula os contadores; todayStart/todayEnd delimitam o dia
	// corrente para movements_today (calculados pelo caso de uso, não pelo banco).
	GetSummary(ctx context.Context, todayStart, todayEnd time.Time) (*StockSummary, error)
	// ListCritical devolve itens com quantidade <= estoque crítico, ascendente
	// por quantidade (os mais urgentes primeiro).
	ListCritical(ctx context.Context) ([]*entity.Item, error)
}
