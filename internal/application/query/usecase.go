// Package query contém os casos de uso de leitura sobre catálogo + ledger:
// resumo do estoque, itens críticos e janela de movimentações recentes.
// Nenhum estado próprio; tudo deriva do storage compartilhado.
package query

import (
	"context"
	"fmt"
	"time"

	"github.com/stockeye/estoque-api/internal/application/dto"
	"github.com/stockeye/estoque-api/internal/domain/entity"
	"github.com/stockeye/estoque-api/internal/domain/repository"
)

const defaultWindowDays = 30

// UseCase consultas agregadas para o dashboard e relatórios.
type UseCase struct {
	reportRepo repository.ReportRepository
	movRepo    repository.MovementRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(reportRepo repository.ReportRepository, movRepo repository.MovementRepository) *UseCase {
	return &UseCase{reportRepo: reportRepo, movRepo: movRepo}
}

// Summary devolve os contadores do dashboard. O recorte de "hoje" é calculado
// aqui (00:00:00.000 – 23:59:59.999 no fuso do servidor), não no banco.
func (uc *UseCase) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	s, err := uc.reportRepo.GetSummary(ctx, todayStart, todayEnd)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	return &dto.SummaryResponse{
		TotalItems:      s.TotalItems,
		ItemsInStock:    s.ItemsInStock,
		ItemsLow:        s.ItemsLow,
		ItemsCritical:   s.ItemsCritical,
		MovementsToday:  s.MovementsToday,
		TotalCategories: s.TotalCategories,
	}, nil
}

// CriticalItems devolve os itens com quantidade <= estoque crítico, ascendente
// por quantidade. Dada a invariante crítico <= mínimo do catálogo, o resultado
// é sempre subconjunto dos itens em estoque baixo.
func (uc *UseCase) CriticalItems(ctx context.Context) ([]*entity.Item, error) {
	return uc.reportRepo.ListCritical(ctx)
}

// ItemHistory devolve o histórico paginado de um item, mais recente primeiro.
func (uc *UseCase) ItemHistory(itemID int64, limit, offset int) ([]*entity.Movement, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.movRepo.ListByItem(itemID, limit, offset)
}

// RecentMovements devolve as movimentações dentro da janela de windowDays,
// mais recentes primeiro. limit <= 0 não limita; windowDays <= 0 usa 30.
func (uc *UseCase) RecentMovements(windowDays, limit int) ([]*entity.Movement, error) {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	since := time.Now().AddDate(0, 0, -windowDays)
	return uc.movRepo.ListRecent(since, limit)
}
