package ledger

import (
	"context"

	"github.com/stockeye/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa transação. Garante que a atualização do saldo e o
// append no histórico sejam uma unidade atômica: Commit se fn devolve nil,
// Rollback caso contrário.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error) error
}
