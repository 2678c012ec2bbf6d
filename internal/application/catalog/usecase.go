package catalog

import (
	"time"

	"github.com/stockeye/estoque-api/internal/domain"
	"github.com/stockeye/estoque-api/internal/domain/entity"
	"github.com/stockeye/estoque-api/internal/domain/repository"
	"github.com/stockeye/estoque-api/pkg/textutil"
)

// UseCase operações do catálogo de itens: cadastro, consulta e listagem.
// Sem efeitos colaterais além da mutação de storage em Register; a quantidade
// só muda pelo ledger.
type UseCase struct {
	itemRepo repository.ItemRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(itemRepo repository.ItemRepository) *UseCase {
	return &UseCase{itemRepo: itemRepo}
}

// RegisterInput dados para cadastrar um item.
type RegisterInput struct {
	Name              string
	Category          string
	Description       string
	InitialQuantity   int
	MinThreshold      int
	CriticalThreshold int
}

// Register cadastra um item novo. O nome é a chave de unicidade (comparação
// exata, sensível a caixa); nome repetido devolve ErrDuplicateItem.
func (uc *UseCase) Register(in RegisterInput) (*entity.Item, error) {
	if in.Name == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity < 0 || in.MinThreshold < 0 || in.CriticalThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	// Crítico acima do mínimo quebraria a classificação das consultas
	// (crítico deixa de ser subconjunto de baixo).
	if in.CriticalThreshold > in.MinThreshold {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		Name:              in.Name,
		Category:          in.Category,
		Description:       in.Description,
		Quantity:          in.InitialQuantity,
		MinThreshold:      in.MinThreshold,
		CriticalThreshold: in.CriticalThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByName busca um item pelo nome exato; devolve ErrItemNotFound se não existir.
func (uc *UseCase) GetByName(name string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

// List devolve todos os itens ordenados por nome.
func (uc *UseCase) List() ([]*entity.Item, error) {
	return uc.itemRepo.List()
}

// Search busca itens ignorando caixa e acentos ("mascara" acha "Máscara N95").
func (uc *UseCase) Search(term string) ([]*entity.Item, error) {
	folded := textutil.Fold(term)
	if folded == "" {
		return uc.itemRepo.List()
	}
	return uc.itemRepo.SearchByName(folded)
}

// ResolveLabel casa um rótulo do classificador com um item do catálogo.
// O rótulo do modelo nem sempre bate byte a byte com o nome cadastrado
// (acentos, caixa), então a comparação usa a forma normalizada. Devolve
// ErrItemNotFound quando nenhum item casa.
func (uc *UseCase) ResolveLabel(label string) (*entity.Item, error) {
	// Caminho rápido: rótulo idêntico ao nome.
	if item, err := uc.itemRepo.GetByName(label); err != nil {
		return nil, err
	} else if item != nil {
		return item, nil
	}
	candidates, err := uc.itemRepo.SearchByName(textutil.Fold(label))
	if err != nil {
		return nil, err
	}
	for _, item := range candidates {
		if textutil.EqualFold(item.Name, label) {
			return item, nil
		}
	}
	return nil, domain.ErrItemNotFound
}
