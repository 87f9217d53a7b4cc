package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/warehouse-fulfillment/internal/application/fulfillment"
	"github.com/jhoicas/warehouse-fulfillment/internal/domain/repository"
)

// Ensure TxRunner implements fulfillment.TxRunner.
var _ fulfillment.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool. Las transacciones usan el aislamiento del
// servidor (READ COMMITTED por defecto).
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run adquiere una conexión del pool, inicia una transacción, ejecuta fn con repos atados
// a la tx y hace Commit. Cualquier error de fn (o un panic) deja la tx en Rollback; la
// conexión vuelve al pool en todos los caminos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	orderRepo repository.OrderRepository,
	receiptRepo repository.ProductWarehouseRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return dbError(fmt.Errorf("begin transaction: %w", err))
	}
	// Rollback tras Commit es no-op (pgx.ErrTxClosed); usa un contexto propio para
	// liberar la conexión aunque ctx ya haya expirado.
	defer func() { _ = tx.Rollback(context.WithoutCancel(ctx)) }()

	if err := fn(
		NewProductRepository(tx),
		NewWarehouseRepository(tx),
		NewOrderRepository(tx),
		NewProductWarehouseRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return dbError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}
