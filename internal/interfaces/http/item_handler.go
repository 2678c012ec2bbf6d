package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/stockeye/estoque-api/internal/application/catalog"
	"github.com/stockeye/estoque-api/internal/application/dto"
	"github.com/stockeye/estoque-api/internal/application/query"
	"github.com/stockeye/estoque-api/internal/domain"
	"github.com/stockeye/estoque-api/internal/domain/entity"
	"github.com/stockeye/estoque-api/internal/domain/stock"
)

// ItemHandler trata o catálogo de itens (protegido).
type ItemHandler struct {
	uc      *catalog.UseCase
	queryUC *query.UseCase
}

// NewItemHandler constrói o handler.
func NewItemHandler(uc *catalog.UseCase, queryUC *query.UseCase) *ItemHandler {
	return &ItemHandler{uc: uc, queryUC: queryUC}
}

// Register godoc
// @Summary      Cadastrar item do catálogo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterItemRequest  true  "name, category, initial_quantity, min_threshold, critical_threshold"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	item, err := h.uc.Register(catalog.RegisterInput{
		Name:              in.Name,
		Category:          in.Category,
		Description:       in.Description,
		InitialQuantity:   in.InitialQuantity,
		MinThreshold:      in.MinThreshold,
		CriticalThreshold: in.CriticalThreshold,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos: nome e categoria obrigatórios, limiares não negativos, crítico <= mínimo"})
		}
		if err == domain.ErrDuplicateItem {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_ITEM", Message: "item já cadastrado com esse nome"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toItemResponse(item))
}

// List godoc
// @Summary      Listar itens (busca opcional por nome, ignora caixa e acentos)
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Termo de busca. Vazio = todos os itens."
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	term := c.Query("q")
	var (
		items []*entity.Item
		err   error
	)
	if term == "" {
		items, err = h.uc.List()
	} else {
		items, err = h.uc.Search(term)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return c.JSON(out)
}

// GetByName godoc
// @Summary      Consultar item pelo nome exato
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Nome do item (URL-encoded)"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{name} [get]
func (h *ItemHandler) GetByName(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome inválido"})
	}
	item, err := h.uc.GetByName(name)
	if err != nil {
		if err == domain.ErrItemNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "item não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toItemResponse(item))
}

// History godoc
// @Summary      Histórico de movimentações de um item
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        name    path   string  true   "Nome do item (URL-encoded)"
// @Param        limit   query  int     false  "Máximo de registros (default 20)"
// @Param        offset  query  int     false  "Deslocamento da página"
// @Success      200  {array}   dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{name}/movements [get]
func (h *ItemHandler) History(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome inválido"})
	}
	item, err := h.uc.GetByName(name)
	if err != nil {
		if err == domain.ErrItemNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "item não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()

	movements, err := h.queryUC.ItemHistory(item.ID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, mv := range movements {
		out = append(out, dto.MovementResponse{
			ID:             mv.ID,
			Item:           item.Name,
			Kind:           mv.Kind,
			Quantity:       mv.Quantity,
			QuantityBefore: mv.QuantityBefore,
			QuantityAfter:  mv.QuantityAfter,
			Actor:          mv.Actor,
			Supplier:       mv.Supplier,
			Destination:    mv.Destination,
			Notes:          mv.Notes,
			CreatedAt:      mv.CreatedAt,
		})
	}
	return c.JSON(out)
}

func toItemResponse(it *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:                it.ID,
		Name:              it.Name,
		Category:          it.Category,
		Description:       it.Description,
		Quantity:          it.Quantity,
		MinThreshold:      it.MinThreshold,
		CriticalThreshold: it.CriticalThreshold,
		Level:             stock.Classify(it),
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
	}
}
