package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// LedgerUseCase aplica operaciones de stock (entrada, salida, ajuste) sobre
// un producto y registra el movimiento correspondiente, de forma atómica.
// La lectura del stock, la validación y la escritura de producto + movimiento
// ocurren dentro de una sola transacción con bloqueo de fila.
type LedgerUseCase struct {
	txRunner TxRunner
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner}
}

// StockInInput entrada para StockIn/StockOut.
// Note nil = sin nota.
type StockInInput struct {
	ProductID int64
	Quantity  int64
	Note      *string
}

// AdjustInput entrada para AdjustStock. NewStock es el valor absoluto
// objetivo, no un delta.
type AdjustInput struct {
	ProductID int64
	NewStock  int64
	Note      *string
}

// AdjustResult resultado de un ajuste. Movement es nil cuando el ajuste fue
// un no-op (el stock ya estaba en el valor pedido).
type AdjustResult struct {
	OldStock int64
	NewStock int64
	Movement *entity.StockMovement
}

// StockIn incrementa el stock del producto y registra un movimiento "in".
// El incremento es relativo al valor almacenado (UPDATE atómico), y comparte
// transacción con la inserción del movimiento.
func (uc *LedgerUseCase) StockIn(ctx context.Context, in StockInInput) (*entity.StockMovement, error) {
	if in.ProductID <= 0 || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	txID := uuid.New().String()

	var movement *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.IncrementStock(ctx, in.ProductID, in.Quantity); err != nil {
			return fmt.Errorf("incrementar stock: %w", err)
		}
		mov := &entity.StockMovement{
			TransactionID: txID,
			ProductID:     in.ProductID,
			Type:          entity.MovementTypeIn,
			Quantity:      in.Quantity,
			Note:          noteOrEmpty(in.Note),
			CreatedAt:     now,
		}
		if err := movementRepo.Create(ctx, mov); err != nil {
			return err
		}
		movement = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// StockOut descuenta stock del producto y registra un movimiento "out".
// Bloquea la fila del producto (SELECT FOR UPDATE) antes de la verificación
// stock >= cantidad: dos salidas concurrentes que individualmente pasan la
// verificación se serializan y solo una confirma. Si no hay stock suficiente
// devuelve InsufficientStockError con el disponible, sin mutar nada.
// Se permite dejar el stock exactamente en 0.
func (uc *LedgerUseCase) StockOut(ctx context.Context, in StockInInput) (*entity.StockMovement, error) {
	if in.ProductID <= 0 || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	txID := uuid.New().String()

	var movement *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Stock < in.Quantity {
			return &domain.InsufficientStockError{Available: product.Stock}
		}
		if err := productRepo.UpdateStock(ctx, in.ProductID, product.Stock-in.Quantity); err != nil {
			return fmt.Errorf("descontar stock: %w", err)
		}
		mov := &entity.StockMovement{
			TransactionID: txID,
			ProductID:     in.ProductID,
			Type:          entity.MovementTypeOut,
			Quantity:      in.Quantity,
			Note:          noteOrEmpty(in.Note),
			CreatedAt:     now,
		}
		if err := movementRepo.Create(ctx, mov); err != nil {
			return err
		}
		movement = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// AdjustStock fija el stock del producto en un valor absoluto y registra un
// movimiento "adjustment" con quantity = abs(diferencia). Si el stock ya está
// en el valor pedido no muta nada ni crea movimiento (Movement nil). La fila
// se bloquea antes de leer para que la nota generada refleje el valor
// anterior realmente observado por esta llamada.
func (uc *LedgerUseCase) AdjustStock(ctx context.Context, in AdjustInput) (*AdjustResult, error) {
	if in.ProductID <= 0 || in.NewStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	txID := uuid.New().String()

	var result *AdjustResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		oldStock := product.Stock
		difference := in.NewStock - oldStock
		if difference == 0 {
			result = &AdjustResult{OldStock: oldStock, NewStock: in.NewStock}
			return nil
		}
		if err := productRepo.UpdateStock(ctx, in.ProductID, in.NewStock); err != nil {
			return fmt.Errorf("ajustar stock: %w", err)
		}
		note := noteOrEmpty(in.Note)
		if note == "" {
			note = fmt.Sprintf("Manual stock adjustment from %d to %d", oldStock, in.NewStock)
		}
		mov := &entity.StockMovement{
			TransactionID: txID,
			ProductID:     in.ProductID,
			Type:          entity.MovementTypeAdjust,
			Quantity:      abs(difference),
			Note:          note,
			CreatedAt:     now,
		}
		if err := movementRepo.Create(ctx, mov); err != nil {
			return err
		}
		result = &AdjustResult{OldStock: oldStock, NewStock: in.NewStock, Movement: mov}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func noteOrEmpty(note *string) string {
	if note == nil {
		return ""
	}
	return *note
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
