package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// El libro es append-only: no hay UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock y asigna su ID.
// Note vacío se guarda como NULL.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (transaction_id, product_id, type, quantity, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	note := (*string)(nil)
	if movement.Note != "" {
		note = &movement.Note
	}
	err := r.q.QueryRow(ctx, query,
		movement.TransactionID, movement.ProductID, movement.Type,
		movement.Quantity, note, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve (nil, nil) si no existe.
func (r *StockMovementRepo) GetByID(ctx context.Context, id int64) (*entity.StockMovement, error) {
	query := `
		SELECT id, transaction_id, product_id, type, quantity, note, created_at
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	var note *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.TransactionID, &m.ProductID, &m.Type, &m.Quantity, &note, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	if note != nil {
		m.Note = *note
	}
	return &m, nil
}

// ListByProduct lista movimientos de un producto, más reciente primero.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, transaction_id, product_id, type, quantity, note, created_at
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var note *string
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.ProductID, &m.Type,
			&m.Quantity, &note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if note != nil {
			m.Note = *note
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
