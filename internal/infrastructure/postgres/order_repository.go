package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Todas las queries filtran por owner_id: no-encontrado y ajeno son
// indistinguibles para el caller.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un nuevo pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, owner_id, order_number, part_number, last_inquiry, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OwnerID, order.OrderNumber, order.PartNumber,
		order.LastInquiry, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por (id, owner); (nil, nil) si ausente o ajeno.
func (r *OrderRepo) GetByID(id, ownerID string) (*entity.Order, error) {
	query := `
		SELECT id, owner_id, order_number, part_number, last_inquiry, status, created_at, updated_at
		FROM orders WHERE id = $1 AND owner_id = $2`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id, ownerID).Scan(
		&o.ID, &o.OwnerID, &o.OrderNumber, &o.PartNumber,
		&o.LastInquiry, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListByOwner lista los pedidos del propietario, más reciente primero.
func (r *OrderRepo) ListByOwner(ownerID string) ([]*entity.Order, error) {
	query := `
		SELECT id, owner_id, order_number, part_number, last_inquiry, status, created_at, updated_at
		FROM orders WHERE owner_id = $1 ORDER BY updated_at DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.OwnerID, &o.OrderNumber, &o.PartNumber,
			&o.LastInquiry, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update lee la fila con FOR UPDATE, aplica patch y reescribe en la misma
// transacción: dos parches concurrentes se serializan en la fila bloqueada.
func (r *OrderRepo) Update(id, ownerID string, patch func(*entity.Order)) (*entity.Order, error) {
	ctx := context.Background()
	var out *entity.Order
	err := inTx(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			SELECT id, owner_id, order_number, part_number, last_inquiry, status, created_at, updated_at
			FROM orders WHERE id = $1 AND owner_id = $2 FOR UPDATE`
		var o entity.Order
		err := tx.QueryRow(ctx, query, id, ownerID).Scan(
			&o.ID, &o.OwnerID, &o.OrderNumber, &o.PartNumber,
			&o.LastInquiry, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("lock order: %w", err)
		}
		patch(&o)
		_, err = tx.Exec(ctx, `
			UPDATE orders SET order_number = $3, part_number = $4, last_inquiry = $5, status = $6, updated_at = $7
			WHERE id = $1 AND owner_id = $2`,
			o.ID, o.OwnerID, o.OrderNumber, o.PartNumber,
			o.LastInquiry, o.Status, o.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		out = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina el pedido del par (id, owner); false si ausente o ajeno.
func (r *OrderRepo) Delete(id, ownerID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM orders WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
