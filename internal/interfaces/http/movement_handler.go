package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockeye/estoque-api/internal/application/dto"
	"github.com/stockeye/estoque-api/internal/application/ledger"
	"github.com/stockeye/estoque-api/internal/application/query"
	"github.com/stockeye/estoque-api/internal/domain"
	"github.com/stockeye/estoque-api/internal/domain/entity"
)

// MovementHandler trata o ledger de movimentações (protegido).
type MovementHandler struct {
	ledgerUC *ledger.UseCase
	queryUC  *query.UseCase
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(ledgerUC *ledger.UseCase, queryUC *query.UseCase) *MovementHandler {
	return &MovementHandler{ledgerUC: ledgerUC, queryUC: queryUC}
}

// Apply godoc
// @Summary      Aplicar movimentação de estoque (entrada ou saída)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyMovementRequest  true  "item, kind (entrada|saida), quantity (magnitude positiva)"
// @Success      201   {object}  dto.MovementResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	res, err := h.ledgerUC.Apply(c.Context(), ledger.Input{
		ItemName:    in.ItemName,
		Kind:        in.Kind,
		Quantity:    in.Quantity,
		Actor:       GetActor(c),
		Supplier:    in.Supplier,
		Destination: in.Destination,
		Notes:       in.Notes,
	})
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResult(res))
}

// ApplyBatch godoc
// @Summary      Aplicar lote de movimentações (melhor esforço, não transacional)
// @Description  Aplica as operações na ordem recebida, com um único kind.
//
//	A falha de uma operação não bloqueia nem desfaz as demais; cada
//	entrada do resultado informa sucesso ou o motivo da rejeição.
//
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyBatchRequest  true  "kind, operations[{item, quantity}]"
// @Success      200   {object}  dto.ApplyBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/batch [post]
func (h *MovementHandler) ApplyBatch(c *fiber.Ctx) error {
	var in dto.ApplyBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if !entity.ValidMovementKind(in.Kind) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind deve ser entrada ou saida"})
	}
	ops := make([]ledger.BatchOperation, 0, len(in.Operations))
	for _, op := range in.Operations {
		ops = append(ops, ledger.BatchOperation{ItemName: op.ItemName, Quantity: op.Quantity})
	}
	batch, err := h.ledgerUC.ApplyBatch(c.Context(), ops, in.Kind, GetActor(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	out := dto.ApplyBatchResponse{
		BatchID:       batch.BatchID,
		Results:       make([]dto.BatchEntryResponse, 0, len(batch.Results)),
		CriticalItems: make([]dto.CriticalAlert, 0, len(batch.CriticalItems)),
	}
	for _, entry := range batch.Results {
		e := dto.BatchEntryResponse{Item: entry.ItemName, Success: entry.Success()}
		if entry.Success() {
			r := toMovementResult(entry.Result)
			e.Result = &r
		} else {
			e.Error = batchEntryError(entry.Err)
		}
		out.Results = append(out.Results, e)
	}
	for _, crit := range batch.CriticalItems {
		out.CriticalItems = append(out.CriticalItems, dto.CriticalAlert{
			Item:            crit.ItemName,
			CurrentQuantity: crit.CurrentQuantity,
		})
	}
	return c.JSON(out)
}

// ListRecent godoc
// @Summary      Histórico de movimentações recentes
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        days   query  int  false  "Janela em dias (default 30)"
// @Param        limit  query  int  false  "Máximo de registros (0 = sem limite)"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) ListRecent(c *fiber.Ctx) error {
	days := c.QueryInt("days")
	limit := c.QueryInt("limit")
	movements, err := h.queryUC.RecentMovements(days, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, mv := range movements {
		out = append(out, dto.MovementResponse{
			ID:             mv.ID,
			Item:           mv.ItemName,
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

// movementError mapeia os erros do ledger para status HTTP.
func movementError(c *fiber.Ctx, err error) error {
	resp := batchEntryError(err)
	switch err {
	case domain.ErrItemNotFound:
		return c.Status(fiber.StatusNotFound).JSON(resp)
	case domain.ErrInvalidQuantity, domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(resp)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
}

// batchEntryError traduz um erro do ledger para o corpo de erro da API.
func batchEntryError(err error) *dto.ErrorResponse {
	switch err {
	case domain.ErrItemNotFound:
		return &dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "item não encontrado"}
	case domain.ErrInvalidQuantity:
		return &dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "quantidade deve ser positiva"}
	case domain.ErrInvalidInput:
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "kind deve ser entrada ou saida"}
	case domain.ErrInsufficientStock:
		return &dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente para a saída"}
	default:
		return &dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
	}
}

func toMovementResult(r *ledger.Result) dto.MovementResultResponse {
	return dto.MovementResultResponse{
		Item:              r.Item,
		Kind:              r.Kind,
		Quantity:          r.Quantity,
		PreviousQuantity:  r.PreviousQuantity,
		CurrentQuantity:   r.CurrentQuantity,
		CriticalThreshold: r.CriticalThreshold,
		IsCritical:        r.IsCritical(),
	}
}
