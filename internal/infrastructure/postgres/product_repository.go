package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/warehouse-fulfillment/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de lectura de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Exists indica si hay un producto con ese ID.
func (r *ProductRepo) Exists(ctx context.Context, productID int) (bool, error) {
	_, found, err := queryScalar[int](ctx, r.q,
		`SELECT 1 FROM product WHERE id_product = @id_product`,
		pgx.NamedArgs{"id_product": productID},
	)
	if err != nil {
		return false, dbError(fmt.Errorf("product exists: %w", err))
	}
	return found, nil
}

// UnitPrice obtiene el precio unitario del producto.
func (r *ProductRepo) UnitPrice(ctx context.Context, productID int) (decimal.Decimal, bool, error) {
	price, found, err := queryScalar[decimal.Decimal](ctx, r.q,
		`SELECT price FROM product WHERE id_product = @id_product`,
		pgx.NamedArgs{"id_product": productID},
	)
	if err != nil {
		return decimal.Zero, false, dbError(fmt.Errorf("product price: %w", err))
	}
	return price, found, nil
}
