package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/warehouse-fulfillment/internal/domain"
	"github.com/jhoicas/warehouse-fulfillment/internal/domain/entity"
	"github.com/jhoicas/warehouse-fulfillment/internal/domain/repository"
)

var _ repository.ProductWarehouseRepository = (*ProductWarehouseRepo)(nil)

// ProductWarehouseRepo implementación del puerto ProductWarehouseRepository sobre PostgreSQL.
type ProductWarehouseRepo struct {
	q Querier
}

// NewProductWarehouseRepository construye el adaptador de recepciones. Pasar pool o tx (Querier).
func NewProductWarehouseRepository(q Querier) *ProductWarehouseRepo {
	return &ProductWarehouseRepo{q: q}
}

// Create inserta la recepción y devuelve id_product_warehouse. Si otra transacción ya
// enlazó la orden (UNIQUE id_order) devuelve domain.ErrOrderAlreadyFulfilled.
func (r *ProductWarehouseRepo) Create(ctx context.Context, receipt *entity.ProductWarehouse) (int, error) {
	query := `
		INSERT INTO product_warehouse (id_warehouse, id_product, id_order, amount, price, created_at)
		VALUES (@id_warehouse, @id_product, @id_order, @amount, @price, @created_at)
		RETURNING id_product_warehouse`
	id, found, err := queryScalar[int](ctx, r.q, query, pgx.NamedArgs{
		"id_warehouse": receipt.WarehouseID,
		"id_product":   receipt.ProductID,
		"id_order":     receipt.OrderID,
		"amount":       receipt.Amount,
		"price":        receipt.Price,
		"created_at":   receipt.CreatedAt,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrOrderAlreadyFulfilled
		}
		return 0, dbError(fmt.Errorf("insert product_warehouse: %w", err))
	}
	if !found {
		return 0, domain.ErrInsertMissingID
	}
	receipt.ID = id
	return id, nil
}
