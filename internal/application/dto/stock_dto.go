package dto

import (
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// StockInRequest body para POST /api/stock-in y /api/stock-out.
type StockInRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Note      *string `json:"note,omitempty"`
}

// AdjustStockRequest body para POST /api/adjust-stock.
// NewStock es puntero para distinguir "ausente" de "ajustar a 0".
type AdjustStockRequest struct {
	ProductID int64   `json:"product_id"`
	NewStock  *int64  `json:"new_stock"`
	Note      *string `json:"note,omitempty"`
}

// MovementResponse salida de un movimiento de stock.
type MovementResponse struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"transaction_id"`
	ProductID     int64     `json:"product_id"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// StockMovementCreated respuesta de stock-in / stock-out.
type StockMovementCreated struct {
	Message  string           `json:"message"`
	Movement MovementResponse `json:"movement"`
}

// StockRejected rechazo de negocio de stock-out (stock insuficiente).
type StockRejected struct {
	Message        string `json:"message"`
	AvailableStock int64  `json:"available_stock"`
}

// StockAdjusted respuesta de adjust-stock cuando hubo cambio.
type StockAdjusted struct {
	Message  string            `json:"message"`
	OldStock int64             `json:"old_stock"`
	NewStock int64             `json:"new_stock"`
	Movement *MovementResponse `json:"movement,omitempty"`
}

// MessageResponse respuesta con solo mensaje (no-op de ajuste, ping).
type MessageResponse struct {
	Message string `json:"message"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ToMovementResponse mapea la entidad al DTO de salida.
func ToMovementResponse(m *entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		ProductID:     m.ProductID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
	}
}
