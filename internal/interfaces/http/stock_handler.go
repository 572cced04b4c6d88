package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/stock"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// StockHandler maneja las peticiones HTTP del libro de stock (protegido).
type StockHandler struct {
	ledger    *stock.LedgerUseCase
	movements *stock.MovementsUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(ledger *stock.LedgerUseCase, movements *stock.MovementsUseCase) *StockHandler {
	return &StockHandler{ledger: ledger, movements: movements}
}

// StockIn godoc
// @Summary      Registrar entrada de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "product_id, quantity (>=1), note opcional"
// @Success      201   {object}  dto.StockMovementCreated
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-in [post]
func (h *StockHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID <= 0 || in.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y quantity (>= 1) son requeridos"})
	}
	movement, err := h.ledger.StockIn(c.Context(), stock.StockInInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Note:      in.Note,
	})
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StockMovementCreated{
		Message:  "Stock-in successful",
		Movement: dto.ToMovementResponse(movement),
	})
}

// StockOut godoc
// @Summary      Registrar salida de stock
// @Description  Rechaza con 400 y available_stock cuando no hay stock suficiente.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "product_id, quantity (>=1), note opcional"
// @Success      201   {object}  dto.StockMovementCreated
// @Failure      400   {object}  dto.StockRejected
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-out [post]
func (h *StockHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID <= 0 || in.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y quantity (>= 1) son requeridos"})
	}
	movement, err := h.ledger.StockOut(c.Context(), stock.StockInInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Note:      in.Note,
	})
	if err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			// Rechazo de negocio, no es fallo del sistema: se reporta el disponible.
			return c.Status(fiber.StatusBadRequest).JSON(dto.StockRejected{
				Message:        "Not enough stock available",
				AvailableStock: insufficient.Available,
			})
		}
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StockMovementCreated{
		Message:  "Stock-out successful",
		Movement: dto.ToMovementResponse(movement),
	})
}

// AdjustStock godoc
// @Summary      Ajustar stock a un valor absoluto
// @Description  new_stock es el valor objetivo, no un delta. Si el stock ya
// @Description  está en ese valor no se crea movimiento.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, new_stock (>=0), note opcional"
// @Success      200   {object}  dto.StockAdjusted
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/adjust-stock [post]
func (h *StockHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID <= 0 || in.NewStock == nil || *in.NewStock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y new_stock (>= 0) son requeridos"})
	}
	result, err := h.ledger.AdjustStock(c.Context(), stock.AdjustInput{
		ProductID: in.ProductID,
		NewStock:  *in.NewStock,
		Note:      in.Note,
	})
	if err != nil {
		return stockError(c, err)
	}
	if result.Movement == nil {
		return c.JSON(dto.MessageResponse{
			Message: "No stock adjustment needed. Stock is already at this value.",
		})
	}
	mov := dto.ToMovementResponse(result.Movement)
	return c.JSON(dto.StockAdjusted{
		Message:  "Stock adjusted successfully",
		OldStock: result.OldStock,
		NewStock: result.NewStock,
		Movement: &mov,
	})
}

// ListMovements godoc
// @Summary      Listar movimientos de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  int  true   "ID del producto"
// @Param        limit       query  int  false  "Límite"  default(20)
// @Param        offset      query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	productID := int64(c.QueryInt("product_id"))
	if productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()

	list, err := h.movements.ListByProduct(c.Context(), productID, page.Limit, page.Offset)
	if err != nil {
		return stockError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.ToMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// stockError mapea errores de dominio a respuestas HTTP.
func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
