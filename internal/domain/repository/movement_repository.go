package repository

import (
	"time"

	"github.com/stockeye/estoque-api/internal/domain/entity"
)

// MovementRepository define o porto de persistência do histórico de movimentações.
// O histórico é append-only: não há Update nem Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListRecent devolve movimentações com created_at >= since, mais recentes
	// primeiro, com o nome do item resolvido via JOIN. limit <= 0 não limita.
	ListRecent(since time.Time, limit int) ([]*entity.Movement, error)
	ListByItem(itemID int64, limit, offset int) ([]*entity.Movement, error)
}
