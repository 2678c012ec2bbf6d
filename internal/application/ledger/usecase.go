package ledger

import (
	"context"
	"time"

	"github.com/stockeye/estoque-api/internal/domain"
	"github.com/stockeye/estoque-api/internal/domain/entity"
	"github.com/stockeye/estoque-api/internal/domain/repository"
	"github.com/stockeye/estoque-api/internal/domain/stock"
)

// Config políticas do ledger.
type Config struct {
	// AutoCreateItems cadastra o item na mesma transação quando o nome não
	// existe (primeira movimentação cria o item). Desligado, movimentação
	// contra nome desconhecido devolve ErrItemNotFound.
	AutoCreateItems          bool
	DefaultMinThreshold      int
	DefaultCriticalThreshold int
	// SystemActor é usado quando o chamador não informa ator.
	SystemActor string
}

// UseCase aplica movimentações de estoque de forma transacional, com bloqueio
// de linha (SELECT FOR UPDATE) por item e Commit/Rollback. É o único caminho
// de escrita sobre a quantidade dos itens e o histórico.
type UseCase struct {
	txRunner TxRunner
	cfg      Config
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner TxRunner, cfg Config) *UseCase {
	if cfg.SystemActor == "" {
		cfg.SystemActor = "system"
	}
	return &UseCase{txRunner: txRunner, cfg: cfg}
}

// Input entrada para aplicar uma movimentação.
// Quantity é sempre a magnitude positiva; a direção vem de Kind — nunca um
// delta com sinal, para eliminar a classe de bugs de confusão de sinal.
type Input struct {
	ItemName    string
	Kind        string // entrada | saida
	Quantity    int
	Actor       string
	Supplier    string
	Destination string
	Notes       string
	BatchID     string // correlação quando vem de ApplyBatch
}

// Result eco de uma movimentação bem-sucedida. CriticalThreshold permite ao
// chamador (lote ou UI) decidir o alerta de estoque crítico sem nova consulta.
type Result struct {
	Item              string
	Kind              string
	Quantity          int
	PreviousQuantity  int
	CurrentQuantity   int
	CriticalThreshold int
}

// IsCritical informa se a movimentação deixou o item no limiar crítico ou abaixo.
func (r *Result) IsCritical() bool {
	return stock.IsCritical(r.CurrentQuantity, r.CriticalThreshold)
}

// Apply valida e aplica uma movimentação: resolve o item, calcula a nova
// quantidade, atualiza o saldo e grava o registro imutável do histórico —
// tudo ou nada. Qualquer rejeição (ErrItemNotFound, ErrInvalidQuantity,
// ErrInsufficientStock) deixa o estado durável exatamente como estava.
func (uc *UseCase) Apply(ctx context.Context, input Input) (*Result, error) {
	if !entity.ValidMovementKind(input.Kind) {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if input.ItemName == "" {
		return nil, domain.ErrItemNotFound
	}
	actor := input.Actor
	if actor == "" {
		actor = uc.cfg.SystemActor
	}

	var result *Result
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error {
		// Bloqueia a linha do item: movimentações concorrentes sobre o mesmo
		// item ficam estritamente ordenadas e o par antes/depois nunca fica
		// obsoleto em relação a uma irmã commitada.
		item, err := itemRepo.GetByNameForUpdate(input.ItemName)
		if err != nil {
			return err
		}
		if item == nil {
			if !uc.cfg.AutoCreateItems {
				return domain.ErrItemNotFound
			}
			// Primeira movimentação cria o item. Se a saída ainda assim
			// deixar o estoque negativo, o rollback desfaz também o cadastro.
			item, err = uc.createItem(itemRepo, input.ItemName)
			if err != nil {
				return err
			}
		}

		newQty, ok := stock.NextQuantity(item.Quantity, input.Quantity, input.Kind)
		if !ok {
			return domain.ErrInsufficientStock
		}

		if err := itemRepo.UpdateQuantity(item.ID, newQty); err != nil {
			return err
		}
		mov := &entity.Movement{
			ItemID:         item.ID,
			Kind:           input.Kind,
			Quantity:       input.Quantity,
			QuantityBefore: item.Quantity,
			QuantityAfter:  newQty,
			Actor:          actor,
			Supplier:       input.Supplier,
			Destination:    input.Destination,
			Notes:          input.Notes,
			BatchID:        input.BatchID,
			CreatedAt:      time.Now(),
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		result = &Result{
			Item:              item.Name,
			Kind:              input.Kind,
			Quantity:          input.Quantity,
			PreviousQuantity:  item.Quantity,
			CurrentQuantity:   newQty,
			CriticalThreshold: item.CriticalThreshold,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *UseCase) createItem(itemRepo repository.ItemRepository, name string) (*entity.Item, error) {
	now := time.Now()
	item := &entity.Item{
		Name:              name,
		Category:          "Geral",
		Quantity:          0,
		MinThreshold:      uc.cfg.DefaultMinThreshold,
		CriticalThreshold: uc.cfg.DefaultCriticalThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}
