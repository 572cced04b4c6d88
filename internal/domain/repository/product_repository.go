package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetBySKU devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE)
	// dentro de la transacción activa.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	// IncrementStock suma quantity al stock almacenado de forma atómica
	// (UPDATE relativo al valor en BD, no read-modify-write).
	IncrementStock(ctx context.Context, id int64, quantity int64) error
	// UpdateStock sobreescribe el stock con un valor absoluto. Solo debe
	// llamarse con la fila bloqueada (GetForUpdate) en la misma transacción.
	UpdateStock(ctx context.Context, id int64, stock int64) error
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
