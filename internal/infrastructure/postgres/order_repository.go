package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/warehouse-fulfillment/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// FindEligible devuelve la orden más antigua (created_at, luego id_order) del producto y cantidad
// dados, creada antes de createdBefore y sin fila en product_warehouse que la referencie.
func (r *OrderRepo) FindEligible(ctx context.Context, productID, amount int, createdBefore time.Time) (int, bool, error) {
	query := `
		SELECT o.id_order
		FROM "order" o
		WHERE o.id_product = @id_product
		  AND o.amount = @amount
		  AND o.created_at < @created_at
		  AND NOT EXISTS (
			SELECT 1 FROM product_warehouse pw WHERE pw.id_order = o.id_order
		  )
		ORDER BY o.created_at, o.id_order
		LIMIT 1`
	id, found, err := queryScalar[int](ctx, r.q, query, pgx.NamedArgs{
		"id_product": productID,
		"amount":     amount,
		"created_at": createdBefore,
	})
	if err != nil {
		return 0, false, dbError(fmt.Errorf("find eligible order: %w", err))
	}
	return id, found, nil
}

// MarkFulfilled fija fulfilled_at de la orden.
func (r *OrderRepo) MarkFulfilled(ctx context.Context, orderID int, fulfilledAt time.Time) error {
	_, err := execStatement(ctx, r.q,
		`UPDATE "order" SET fulfilled_at = @fulfilled_at WHERE id_order = @id_order`,
		pgx.NamedArgs{"id_order": orderID, "fulfilled_at": fulfilledAt},
	)
	if err != nil {
		return dbError(fmt.Errorf("update order fulfillment: %w", err))
	}
	return nil
}
