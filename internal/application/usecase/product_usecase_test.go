package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// fakeProductRepo fake en memoria del puerto ProductRepository.
type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) IncrementStock(_ context.Context, id int64, quantity int64) error {
	r.products[id].Stock += quantity
	return nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, id int64, stock int64) error {
	r.products[id].Stock = stock
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	delete(r.products, id)
	return nil
}

func TestProductCreate_AsignaIDYStockDeApertura(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU:   "SKU-1",
		Name:  "Teclado",
		Price: decimal.NewFromInt(25),
		Stock: 10,
	})
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.Equal(t, int64(10), out.Stock)
	assert.Equal(t, "Teclado", out.Name)
}

func TestProductCreate_SKUDuplicado_RetornaDuplicate(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{SKU: "SKU-1", Name: "Teclado"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateProductRequest{SKU: "SKU-1", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_StockNegativo_RetornaInvalidInput(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "SKU-1", Name: "Teclado", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_NoTocaElStock(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{SKU: "SKU-1", Name: "Teclado", Stock: 7})
	require.NoError(t, err)

	name := "Teclado mecánico"
	out, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Teclado mecánico", out.Name)
	assert.Equal(t, int64(7), out.Stock, "el update de producto nunca muta el stock")
}

func TestProductUpdate_Inexistente_RetornaNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	name := "x"
	out, err := uc.Update(context.Background(), 99, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out, "producto inexistente: (nil, nil) y el handler responde 404")
}

func TestProductGetByID_Inexistente_RetornaNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.GetByID(context.Background(), 123)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductDelete_Elimina(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{SKU: "SKU-1", Name: "Teclado"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	out, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, out)
}
