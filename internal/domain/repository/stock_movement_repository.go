package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para el libro de
// movimientos (DIP). Solo inserción y lectura: el libro es append-only.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id int64) (*entity.StockMovement, error)
	ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.StockMovement, error)
}
