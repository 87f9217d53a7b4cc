package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/warehouse-fulfillment/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de lectura de bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Exists indica si hay una bodega con ese ID.
func (r *WarehouseRepo) Exists(ctx context.Context, warehouseID int) (bool, error) {
	_, found, err := queryScalar[int](ctx, r.q,
		`SELECT 1 FROM warehouse WHERE id_warehouse = @id_warehouse`,
		pgx.NamedArgs{"id_warehouse": warehouseID},
	)
	if err != nil {
		return false, dbError(fmt.Errorf("warehouse exists: %w", err))
	}
	return found, nil
}
