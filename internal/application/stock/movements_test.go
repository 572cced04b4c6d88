package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/stock"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

func TestMovements_ListByProduct_MasRecientePrimero(t *testing.T) {
	store := newMemStore(producto(1, 0))
	ledger := newLedger(store)
	ctx := context.Background()

	_, err := ledger.StockIn(ctx, stock.StockInInput{ProductID: 1, Quantity: 5})
	require.NoError(t, err)
	_, err = ledger.StockOut(ctx, stock.StockInInput{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	uc := stock.NewMovementsUseCase(&memProductRepo{store: store}, &memMovementRepo{store: store})
	list, err := uc.ListByProduct(ctx, 1, 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entity.MovementTypeOut, list[0].Type, "el movimiento más reciente va primero")
	assert.Equal(t, entity.MovementTypeIn, list[1].Type)
}

func TestMovements_ListByProduct_ProductoInexistente(t *testing.T) {
	store := newMemStore()
	uc := stock.NewMovementsUseCase(&memProductRepo{store: store}, &memMovementRepo{store: store})

	_, err := uc.ListByProduct(context.Background(), 7, 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
