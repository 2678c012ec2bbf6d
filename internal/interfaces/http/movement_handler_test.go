package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockeye/estoque-api/internal/application/dto"
	"github.com/stockeye/estoque-api/internal/application/ledger"
	"github.com/stockeye/estoque-api/internal/domain/entity"
	"github.com/stockeye/estoque-api/internal/domain/repository"
	apphttp "github.com/stockeye/estoque-api/internal/interfaces/http"
	"github.com/stockeye/estoque-api/pkg/textutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type memItemRepo struct {
	items map[string]*entity.Item
}

func (r *memItemRepo) Create(item *entity.Item) error {
	item.ID = int64(len(r.items) + 1)
	r.items[item.Name] = item
	return nil
}

func (r *memItemRepo) GetByName(name string) (*entity.Item, error) {
	return r.items[name], nil
}

func (r *memItemRepo) GetByNameForUpdate(name string) (*entity.Item, error) {
	return r.items[name], nil
}

func (r *memItemRepo) UpdateQuantity(itemID int64, quantity int) error {
	for _, it := range r.items {
		if it.ID == itemID {
			it.Quantity = quantity
			return nil
		}
	}
	return nil
}

func (r *memItemRepo) List() ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *memItemRepo) SearchByName(normalizedTerm string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if textutil.Fold(it.Name) == normalizedTerm {
			out = append(out, it)
		}
	}
	return out, nil
}

type memMovementRepo struct {
	movements []*entity.Movement
}

func (r *memMovementRepo) Create(m *entity.Movement) error {
	m.ID = int64(len(r.movements) + 1)
	r.movements = append(r.movements, m)
	return nil
}

func (r *memMovementRepo) ListRecent(since time.Time, limit int) ([]*entity.Movement, error) {
	return r.movements, nil
}

func (r *memMovementRepo) ListByItem(itemID int64, limit, offset int) ([]*entity.Movement, error) {
	return r.movements, nil
}

// fakeTxRunner executa o callback direto sobre os repositórios em memória.
type fakeTxRunner struct {
	itemRepo *memItemRepo
	movRepo  *memMovementRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.ItemRepository, repository.MovementRepository) error) error {
	return fn(f.itemRepo, f.movRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildMovementApp() *fiber.App {
	itemRepo := &memItemRepo{items: map[string]*entity.Item{
		"Luvas Cirúrgicas": {
			ID: 1, Name: "Luvas Cirúrgicas", Category: "EPI",
			Quantity: 50, MinThreshold: 20, CriticalThreshold: 10,
		},
	}}
	runner := &fakeTxRunner{itemRepo: itemRepo, movRepo: &memMovementRepo{}}
	ledgerUC := ledger.NewUseCase(runner, ledger.Config{})

	app := fiber.New()
	h := apphttp.NewMovementHandler(ledgerUC, nil)
	app.Post("/api/movements", h.Apply)
	app.Post("/api/movements/batch", h.ApplyBatch)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/movements
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_Sucesso(t *testing.T) {
	app := buildMovementApp()
	resp := postJSON(t, app, "/api/movements", dto.ApplyMovementRequest{
		ItemName: "Luvas Cirúrgicas", Kind: "saida", Quantity: 45, Destination: "UTI 2",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.MovementResultResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 50, out.PreviousQuantity)
	assert.Equal(t, 5, out.CurrentQuantity)
	assert.True(t, out.IsCritical, "5 <= limiar crítico 10 deve sinalizar alerta")
}

func TestApplyMovement_ItemDesconhecido_Retorna404(t *testing.T) {
	app := buildMovementApp()
	resp := postJSON(t, app, "/api/movements", dto.ApplyMovementRequest{
		ItemName: "Termômetro", Kind: "entrada", Quantity: 5,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ITEM_NOT_FOUND", out.Code)
}

func TestApplyMovement_QuantidadeInvalida_Retorna400(t *testing.T) {
	app := buildMovementApp()
	resp := postJSON(t, app, "/api/movements", dto.ApplyMovementRequest{
		ItemName: "Luvas Cirúrgicas", Kind: "entrada", Quantity: 0,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INVALID_QUANTITY", out.Code)
}

func TestApplyMovement_EstoqueInsuficiente_Retorna409(t *testing.T) {
	app := buildMovementApp()
	resp := postJSON(t, app, "/api/movements", dto.ApplyMovementRequest{
		ItemName: "Luvas Cirúrgicas", Kind: "saida", Quantity: 60,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/movements/batch
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyBatch_SucessoParcial(t *testing.T) {
	app := buildMovementApp()
	resp := postJSON(t, app, "/api/movements/batch", dto.ApplyBatchRequest{
		Kind: "saida",
		Operations: []dto.BatchOperation{
			{ItemName: "Luvas Cirúrgicas", Quantity: 45},
			{ItemName: "Termômetro", Quantity: 1},
		},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ApplyBatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Results, 2)
	assert.NotEmpty(t, out.BatchID)

	assert.True(t, out.Results[0].Success)
	require.NotNil(t, out.Results[0].Result)
	assert.Equal(t, 5, out.Results[0].Result.CurrentQuantity)

	assert.False(t, out.Results[1].Success)
	require.NotNil(t, out.Results[1].Error)
	assert.Equal(t, "ITEM_NOT_FOUND", out.Results[1].Error.Code)

	require.Len(t, out.CriticalItems, 1)
	assert.Equal(t, "Luvas Cirúrgicas", out.CriticalItems[0].Item)
	assert.Equal(t, 5, out.CriticalItems[0].CurrentQuantity)
}

func TestApplyBatch_KindInvalido_Retorna400(t *testing.T) {
	app := buildMovementApp()
	resp := postJSON(t, app, "/api/movements/batch", dto.ApplyBatchRequest{
		Kind:       "transferencia",
		Operations: []dto.BatchOperation{{ItemName: "Luvas Cirúrgicas", Quantity: 1}},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
