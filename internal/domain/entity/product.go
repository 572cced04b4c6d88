package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario con su stock actual.
// Stock se mantiene >= 0 y se muta únicamente vía movimientos de stock
// (el CRUD de productos nunca lo toca después de la creación).
type Product struct {
	ID          int64
	CategoryID  *int64 // referencia a categoría, nil si no tiene
	SKU         string // código único
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
