package repository

import "github.com/stockeye/estoque-api/internal/domain/entity"

// ItemRepository define o porto de persistência do catálogo de itens.
// Usado dentro de transações para garantir consistência do ledger.
type ItemRepository interface {
	// Create persiste um item novo; devolve domain.ErrDuplicateItem se o nome já existe.
	Create(item *entity.Item) error
	// GetByName devolve nil, nil quando o item não existe (comparação exata do nome).
	GetByName(name string) (*entity.Item, error)
	// GetByNameForUpdate bloqueia a linha do item (SELECT FOR UPDATE) para
	// serializar movimentações concorrentes sobre o mesmo item.
	GetByNameForUpdate(name string) (*entity.Item, error)
	// UpdateQuantity grava a nova quantidade e atualiza updated_at.
	UpdateQuantity(itemID int64, quantity int) error
	List() ([]*entity.Item, error)
	// SearchByName busca itens cujo nome normalizado (sem acentos, caixa baixa)
	// contém o termo normalizado.
	SearchByName(normalizedTerm string) ([]*entity.Item, error)
}
