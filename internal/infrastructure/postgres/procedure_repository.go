package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/warehouse-fulfillment/internal/domain"
	"github.com/jhoicas/warehouse-fulfillment/internal/domain/repository"
)

var _ repository.ProcedureRepository = (*ProcedureRepo)(nil)

// ProcedureRepo invoca la rutina del servidor que registra la recepción completa.
// No abre transacción propia: la atomicidad vive dentro de la rutina.
type ProcedureRepo struct {
	q    Querier
	name pgx.Identifier
}

// NewProcedureRepository construye el adaptador. name es el nombre de la rutina,
// opcionalmente calificado con esquema ("public.add_product_to_warehouse").
func NewProcedureRepository(q Querier, name string) *ProcedureRepo {
	return &ProcedureRepo{q: q, name: pgx.Identifier(strings.Split(name, "."))}
}

// AddProductToWarehouse ejecuta la rutina con los cuatro campos de la petición y devuelve el ID generado.
func (r *ProcedureRepo) AddProductToWarehouse(ctx context.Context, productID, warehouseID, amount int, createdAt time.Time) (int, error) {
	query := fmt.Sprintf(
		`SELECT %s(@id_product, @id_warehouse, @amount, @created_at)`,
		r.name.Sanitize(),
	)
	id, found, err := queryScalar[int](ctx, r.q, query, pgx.NamedArgs{
		"id_product":   productID,
		"id_warehouse": warehouseID,
		"amount":       amount,
		"created_at":   createdAt,
	})
	if err != nil {
		return 0, dbError(err)
	}
	if !found {
		return 0, domain.ErrProcedureMissingID
	}
	return id, nil
}
