package entity

import "time"

// Tipos de movimiento de stock (conjunto cerrado).
const (
	MovementTypeIn     = "in"         // entrada
	MovementTypeOut    = "out"        // salida
	MovementTypeAdjust = "adjustment" // ajuste manual al valor absoluto
)

// StockMovement representa una entrada del libro de movimientos.
// Es append-only: una vez creado nunca se actualiza ni se borra.
// Quantity siempre es positivo; para ajustes es abs(nuevo - anterior).
type StockMovement struct {
	ID            int64
	TransactionID string // uuid asignado por operación
	ProductID     int64
	Type          string // ver constantes MovementType*
	Quantity      int64
	Note          string // vacío = sin nota
	CreatedAt     time.Time
}
