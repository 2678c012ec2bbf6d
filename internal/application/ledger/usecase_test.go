package ledger_test

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockeye/estoque-api/internal/application/ledger"
	"github.com/stockeye/estoque-api/internal/domain"
	"github.com/stockeye/estoque-api/internal/domain/entity"
	"github.com/stockeye/estoque-api/internal/domain/repository"
	"github.com/stockeye/estoque-api/pkg/textutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
//
// O fakeTxRunner reproduz a semântica transacional do TxRunner de produção:
// fn roda sobre uma cópia do estado e o commit só acontece se fn devolver nil.
// Assim os testes de atomicidade verificam de verdade que rejeições não deixam
// escrita parcial.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	items      map[string]*entity.Item
	movements  []*entity.Movement
	nextItemID int64
	nextMovID  int64
}

func newMemStore() *memStore {
	return &memStore{items: map[string]*entity.Item{}, nextItemID: 1, nextMovID: 1}
}

func (s *memStore) clone() *memStore {
	c := &memStore{
		items:      make(map[string]*entity.Item, len(s.items)),
		movements:  make([]*entity.Movement, len(s.movements)),
		nextItemID: s.nextItemID,
		nextMovID:  s.nextMovID,
	}
	for name, it := range s.items {
		cp := *it
		c.items[name] = &cp
	}
	copy(c.movements, s.movements)
	return c
}

type memItemRepo struct{ s *memStore }

func (r *memItemRepo) Create(item *entity.Item) error {
	if _, ok := r.s.items[item.Name]; ok {
		return domain.ErrDuplicateItem
	}
	item.ID = r.s.nextItemID
	r.s.nextItemID++
	cp := *item
	r.s.items[item.Name] = &cp
	return nil
}

func (r *memItemRepo) GetByName(name string) (*entity.Item, error) {
	it, ok := r.s.items[name]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memItemRepo) GetByNameForUpdate(name string) (*entity.Item, error) {
	return r.GetByName(name)
}

func (r *memItemRepo) UpdateQuantity(itemID int64, quantity int) error {
	for _, it := range r.s.items {
		if it.ID == itemID {
			it.Quantity = quantity
			it.UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.ErrItemNotFound
}

func (r *memItemRepo) List() ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.s.items))
	for _, it := range r.s.items {
		cp := *it
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memItemRepo) SearchByName(normalizedTerm string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.s.items {
		if strings.Contains(textutil.Fold(it.Name), normalizedTerm) {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(m *entity.Movement) error {
	m.ID = r.s.nextMovID
	r.s.nextMovID++
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *memMovementRepo) ListRecent(since time.Time, limit int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if m.CreatedAt.Before(since) {
			continue
		}
		cp := *m
		out = append(out, &cp)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *memMovementRepo) ListByItem(itemID int64, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		if r.s.movements[i].ItemID == itemID {
			cp := *r.s.movements[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeTxRunner struct{ s *memStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.ItemRepository, repository.MovementRepository) error) error {
	work := t.s.clone()
	if err := fn(&memItemRepo{s: work}, &memMovementRepo{s: work}); err != nil {
		return err // rollback: descarta a cópia
	}
	*t.s = *work // commit
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func seedItem(s *memStore, name string, qty, min, critical int) {
	s.items[name] = &entity.Item{
		ID: s.nextItemID, Name: name, Category: "EPI",
		Quantity: qty, MinThreshold: min, CriticalThreshold: critical,
	}
	s.nextItemID++
}

func newLedger(s *memStore) *ledger.UseCase {
	return ledger.NewUseCase(&fakeTxRunner{s: s}, ledger.Config{
		DefaultMinThreshold:      10,
		DefaultCriticalThreshold: 5,
		SystemActor:              "system",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Apply
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_EntradaSomaESaidaSubtrai(t *testing.T) {
	s := newMemStore()
	seedItem(s, "Seringa 5ml", 100, 30, 10)
	uc := newLedger(s)

	res, err := uc.Apply(context.Background(), ledger.Input{
		ItemName: "Seringa 5ml", Kind: entity.MovementKindEntrada, Quantity: 20, Actor: "farmacia",
	})
	require.NoError(t, err)
	assert.Equal(t, 100, res.PreviousQuantity)
	assert.Equal(t, 120, res.CurrentQuantity)

	res, err = uc.Apply(context.Background(), ledger.Input{
		ItemName: "Seringa 5ml", Kind: entity.MovementKindSaida, Quantity: 50, Actor: "uti",
	})
	require.NoError(t, err)
	assert.Equal(t, 120, res.PreviousQuantity)
	assert.Equal(t, 70, res.CurrentQuantity)
	assert.Equal(t, 70, s.items["Seringa 5ml"].Quantity)
}

// Pareamento atômico: cada Apply bem-sucedido grava exatamente um movimento e
// a quantidade muda exatamente pelo delta com sinal implicado por (kind, qty).
func TestApply_PareamentoAtomico(t *testing.T) {
	s := newMemStore()
	seedItem(s, "Algodão", 40, 15, 5)
	uc := newLedger(s)

	res, err := uc.Apply(context.Background(), ledger.Input{
		ItemName: "Algodão", Kind: entity.MovementKindSaida, Quantity: 7, Actor: "enfermagem",
		Destination: "Ala B", Notes: "curativos",
	})
	require.NoError(t, err)

	require.Len(t, s.movements, 1)
	mov := s.movements[0]
	assert.Equal(t, entity.MovementKindSaida, mov.Kind)
	assert.Equal(t, 7, mov.Quantity)
	assert.Equal(t, 40, mov.QuantityBefore)
	assert.Equal(t, 33, mov.QuantityAfter)
	assert.Equal(t, mov.QuantityBefore-mov.Quantity, mov.QuantityAfter)
	assert.Equal(t, "enfermagem", mov.Actor)
	assert.Equal(t, "Ala B", mov.Destination)
	assert.Equal(t, res.CurrentQuantity, mov.QuantityAfter)
}

// Cenário da planilha de homologação: item a 50, crítico 10, saída de 45.
func TestApply_SaidaCruzaLimiarCritico(t *testing.T) {
	s := newMemStore()
	seedItem(s, "Luvas Cirúrgicas", 50, 20, 10)
	uc := newLedger(s)

	res, err := uc.Apply(context.Background(), ledger.Input{
		ItemName: "Luvas Cirúrgicas", Kind: entity.MovementKindSaida, Quantity: 45, Actor: "centro-cirurgico",
	})
	require.NoError(t, err)
	assert.Equal(t, 50, res.PreviousQuantity)
	assert.Equal(t, 5, res.CurrentQuantity)
	assert.Equal(t, 10, res.CriticalThreshold)
	assert.True(t, res.IsCritical(), "5 <= 10 deve marcar o item como crítico")
}

func TestApply_ItemDesconhecido(t *testing.T) {
	s := newMemStore()
	uc := newLedger(s)

	_, err := uc.Apply(context.Background(), ledger.Input{
		ItemName: "Unknown Item", Kind: entity.MovementKindEntrada, Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Empty(t, s.movements, "rejeição não pode gravar movimento")
	assert.Empty(t, s.items, "rejeição não pode cadastrar item")
}

func TestApply_QuantidadeInvalida(t *testing.T) {
	s := newMemStore()
	seedItem(s, "Máscara N95", 8, 15, 5)
	uc := newLedger(s)

	for _, qty := range []int{0, -3} {
		_, err := uc.Apply(context.Background(), ledger.Input{
			ItemName: "Máscara N95", Kind: entity.MovementKindSaida, Quantity: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "quantity=%d", qty)
	}
	assert.Equal(t, 8, s.items["Máscara N95"].Quantity)
	assert.Empty(t, s.movements)
}

func TestApply_KindInvalido(t *testing.T) {
	s := newMemStore()
	seedItem(s, "Máscara N95", 8, 15, 5)
	uc := newLedger(s)

	_, err := uc.Apply(context.Background(), ledger.Input{
		ItemName: "Máscara N95", Kind: "ajuste", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Não-negatividade: saída que deixaria o estoque negativo é rejeitada com
// efeito zero sobre a quantidade e o tamanho do histórico.
func TestApply_EstoqueInsuficiente(t *testing.T) {
	s := newMemStore()
	seedItem(s, "Agulha 25x7", 3, 25, 8)
	uc := newLedger(s)

	_, err := uc.Apply(context.Background(), ledger.Input{
		ItemName: "Agulha 25x7", Kind: entity.MovementKindSaida, Quantity: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, s.items["Agulha 25x7"].Quantity, "quantidade deve permanecer 3")
	assert.Empty(t, s.movements)
}

// Saída até exatamente zero é válida (a invariante é >= 0, não > 0).
func TestApply_SaidaAteZero(t *testing.T) {
	s := newMemStore()
	seedItem(s, "Álcool 70%", 20, 10, 3)
	uc := newLedger(s)

	res, err := uc.Apply(context.Background(), ledger.Input{
		ItemName: "Álcool 70%", Kind: entity.MovementKindSaida, Quantity: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.CurrentQuantity)
	assert.True(t, res.IsCritical())
}

// Não-negatividade ao longo de qualquer sequência de Apply: o saldo nunca fica
// negativo e cada rejeição tem efeito zero.
func TestApply_SequenciaNuncaNegativa(t *testing.T) {
	s := newMemStore()
	seedItem(s, "Seringa 5ml", 10, 30, 10)
	uc := newLedger(s)

	seq := []struct {
		kind string
		qty  int
	}{
		{entity.MovementKindSaida, 4},
		{entity.MovementKindSaida, 7}, // rejeitada: 6 - 7 < 0
		{entity.MovementKindEntrada, 2},
		{entity.MovementKindSaida, 8},
		{entity.MovementKindSaida, 1}, // rejeitada: 0 - 1 < 0
	}
	applied := 0
	for _, step := range seq {
		_, err := uc.Apply(context.Background(), ledger.Input{
			ItemName: "Seringa 5ml", Kind: step.kind, Quantity: step.qty,
		})
		if err == nil {
			applied++
		}
		assert.GreaterOrEqual(t, s.items["Seringa 5ml"].Quantity, 0)
		assert.Len(t, s.movements, applied, "histórico só cresce em sucesso")
	}
	assert.Equal(t, 0, s.items["Seringa 5ml"].Quantity)
}

// Imutabilidade do histórico: movimentos já gravados não mudam quando o mesmo
// item recebe novas movimentações.
func TestApply_HistoricoImutavel(t *testing.T) {
	s := newMemStore()
	seedItem(s, "Algodão", 40, 15, 5)
	uc := newLedger(s)

	_, err := uc.Apply(context.Background(), ledger.Input{
		ItemName: "Algodão", Kind: entity.MovementKindSaida, Quantity: 10,
	})
	require.NoError(t, err)
	first := *s.movements[0]

	_, err = uc.Apply(context.Background(), ledger.Input{
		ItemName: "Algodão", Kind: entity.MovementKindEntrada, Quantity: 25,
	})
	require.NoError(t, err)

	assert.Equal(t, first, *s.movements[0], "registro antigo não pode ser alterado")
}

func TestApply_AtorDefaultSystem(t *testing.T) {
	s := newMemStore()
	seedItem(s, "Algodão", 40, 15, 5)
	uc := newLedger(s)

	_, err := uc.Apply(context.Background(), ledger.Input{
		ItemName: "Algodão", Kind: entity.MovementKindEntrada, Quantity: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "system", s.movements[0].Actor)
}

// Com auto-cadastro ligado, a primeira movimentação cria o item com os
// limiares default; uma saída inviável desfaz também o cadastro (rollback).
func TestApply_AutoCadastro(t *testing.T) {
	s := newMemStore()
	uc := ledger.NewUseCase(&fakeTxRunner{s: s}, ledger.Config{
		AutoCreateItems:          true,
		DefaultMinThreshold:      10,
		DefaultCriticalThreshold: 5,
	})

	res, err := uc.Apply(context.Background(), ledger.Input{
		ItemName: "Soro Fisiológico", Kind: entity.MovementKindEntrada, Quantity: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.PreviousQuantity)
	assert.Equal(t, 30, res.CurrentQuantity)
	assert.Equal(t, 5, res.CriticalThreshold)
	require.Contains(t, s.items, "Soro Fisiológico")

	// Saída contra nome desconhecido: o item seria criado com saldo zero, a
	// saída falha e o rollback descarta o cadastro.
	_, err = uc.Apply(context.Background(), ledger.Input{
		ItemName: "Gaze Estéril", Kind: entity.MovementKindSaida, Quantity: 2,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.NotContains(t, s.items, "Gaze Estéril")
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyBatch
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyBatch_IndependenciaEntreOperacoes(t *testing.T) {
	s := newMemStore()
	seedItem(s, "Luvas Cirúrgicas", 50, 20, 10)
	seedItem(s, "Máscara N95", 8, 15, 5)
	seedItem(s, "Seringa 5ml", 100, 30, 10)
	uc := newLedger(s)

	ops := []ledger.BatchOperation{
		{ItemName: "Luvas Cirúrgicas", Quantity: 45},
		{ItemName: "Máscara N95", Quantity: 99}, // falha: estoque insuficiente
		{ItemName: "Seringa 5ml", Quantity: 10},
	}
	batch, err := uc.ApplyBatch(context.Background(), ops, entity.MovementKindSaida, "almoxarifado")
	require.NoError(t, err)
	require.Len(t, batch.Results, 3, "uma entrada por operação, na ordem do input")

	assert.True(t, batch.Results[0].Success())
	assert.False(t, batch.Results[1].Success())
	assert.ErrorIs(t, batch.Results[1].Err, domain.ErrInsufficientStock)
	assert.True(t, batch.Results[2].Success())

	// A falha do meio não bloqueia nem desfaz as vizinhas.
	assert.Equal(t, 5, s.items["Luvas Cirúrgicas"].Quantity)
	assert.Equal(t, 8, s.items["Máscara N95"].Quantity)
	assert.Equal(t, 90, s.items["Seringa 5ml"].Quantity)
	assert.Len(t, s.movements, 2)

	// Lista crítica derivada só dos sucessos: Luvas foi a 5 (<= 10).
	require.Len(t, batch.CriticalItems, 1)
	assert.Equal(t, "Luvas Cirúrgicas", batch.CriticalItems[0].ItemName)
	assert.Equal(t, 5, batch.CriticalItems[0].CurrentQuantity)
}

func TestApplyBatch_LoteVazio(t *testing.T) {
	s := newMemStore()
	uc := newLedger(s)

	batch, err := uc.ApplyBatch(context.Background(), nil, entity.MovementKindSaida, "")
	require.NoError(t, err)
	assert.Empty(t, batch.Results)
	assert.Empty(t, batch.CriticalItems)
}

func TestApplyBatch_MesmoBatchIDEmTodosOsMovimentos(t *testing.T) {
	s := newMemStore()
	seedItem(s, "Algodão", 40, 15, 5)
	seedItem(s, "Álcool 70%", 20, 10, 3)
	uc := newLedger(s)

	batch, err := uc.ApplyBatch(context.Background(), []ledger.BatchOperation{
		{ItemName: "Algodão", Quantity: 5},
		{ItemName: "Álcool 70%", Quantity: 5},
	}, entity.MovementKindEntrada, "farmacia")
	require.NoError(t, err)
	require.Len(t, s.movements, 2)
	assert.NotEmpty(t, batch.BatchID)
	for _, mov := range s.movements {
		assert.Equal(t, batch.BatchID, mov.BatchID)
	}
}

func TestApplyBatch_ItemDesconhecidoNaoAbortaLote(t *testing.T) {
	s := newMemStore()
	seedItem(s, "Seringa 5ml", 100, 30, 10)
	uc := newLedger(s)

	batch, err := uc.ApplyBatch(context.Background(), []ledger.BatchOperation{
		{ItemName: "Inexistente", Quantity: 1},
		{ItemName: "Seringa 5ml", Quantity: 3},
	}, entity.MovementKindSaida, "uti")
	require.NoError(t, err)
	assert.ErrorIs(t, batch.Results[0].Err, domain.ErrItemNotFound)
	assert.True(t, batch.Results[1].Success())
	assert.Equal(t, 97, s.items["Seringa 5ml"].Quantity)
}
