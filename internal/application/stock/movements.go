package stock

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// MovementsUseCase lectura del libro de movimientos (fuera de transacción).
type MovementsUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewMovementsUseCase construye el caso de uso.
func NewMovementsUseCase(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) *MovementsUseCase {
	return &MovementsUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// ListByProduct lista los movimientos de un producto, más reciente primero.
func (uc *MovementsUseCase) ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.StockMovement, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movementRepo.ListByProduct(ctx, productID, limit, offset)
}
