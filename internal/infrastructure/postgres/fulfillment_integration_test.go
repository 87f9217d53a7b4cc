package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/warehouse-fulfillment/internal/application/dto"
	"github.com/jhoicas/warehouse-fulfillment/internal/application/fulfillment"
	"github.com/jhoicas/warehouse-fulfillment/internal/domain"
	"github.com/jhoicas/warehouse-fulfillment/internal/infrastructure/postgres"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integración con PostgreSQL omitida en -short")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("warehouse"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPoolFromDSN(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.ApplySchema(ctx, pool))
	return pool
}

// resetDemo deja la base con el escenario de ejemplo y nada más.
func resetDemo(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()
	_, err := pool.Exec(ctx, `TRUNCATE product_warehouse, "order", warehouse, product RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	require.NoError(t, postgres.SeedDemo(ctx, pool))
}

func countReceipts(t *testing.T, pool *pgxpool.Pool) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM product_warehouse`).Scan(&n))
	return n
}

func fulfilledAt(t *testing.T, pool *pgxpool.Pool, orderID int) *time.Time {
	t.Helper()
	var ts *time.Time
	require.NoError(t, pool.QueryRow(context.Background(),
		`SELECT fulfilled_at FROM "order" WHERE id_order = $1`, orderID).Scan(&ts))
	return ts
}

var demoRequest = dto.ProductWarehouseRequest{
	ProductID:   1,
	WarehouseID: 2,
	Amount:      5,
	CreatedAt:   time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
}

func TestWorkflow_Postgres(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	uc := fulfillment.NewWorkflowUseCase(postgres.NewTxRunner(pool), 10*time.Second, zerolog.Nop())

	t.Run("escenario de ejemplo", func(t *testing.T) {
		resetDemo(t, pool)

		id, err := uc.Fulfill(ctx, demoRequest)
		require.NoError(t, err)
		assert.Positive(t, id)

		var (
			orderID int
			amount  int
			price   decimal.Decimal
		)
		require.NoError(t, pool.QueryRow(ctx,
			`SELECT id_order, amount, price FROM product_warehouse WHERE id_product_warehouse = $1`, id).
			Scan(&orderID, &amount, &price))
		assert.Equal(t, 7, orderID)
		assert.Equal(t, 5, amount)
		assert.True(t, decimal.RequireFromString("49.95").Equal(price), "price = %s", price)

		ts := fulfilledAt(t, pool, 7)
		require.NotNil(t, ts)
		assert.True(t, ts.Equal(demoRequest.CreatedAt))

		_, err = uc.Fulfill(ctx, demoRequest)
		assert.ErrorIs(t, err, domain.ErrNoValidOrder)
		assert.Equal(t, 1, countReceipts(t, pool))
	})

	t.Run("producto inexistente no escribe", func(t *testing.T) {
		resetDemo(t, pool)

		req := demoRequest
		req.ProductID = 999
		_, err := uc.Fulfill(ctx, req)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.EqualError(t, err, "Product not found")
		assert.Zero(t, countReceipts(t, pool))
		assert.Nil(t, fulfilledAt(t, pool, 7))
	})

	t.Run("bodega inexistente", func(t *testing.T) {
		resetDemo(t, pool)

		req := demoRequest
		req.WarehouseID = 999
		_, err := uc.Fulfill(ctx, req)
		assert.ErrorIs(t, err, domain.ErrWarehouseNotFound)
	})

	t.Run("orden posterior a la recepción no es elegible", func(t *testing.T) {
		resetDemo(t, pool)

		req := demoRequest
		req.CreatedAt = time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC)
		_, err := uc.Fulfill(ctx, req)
		assert.ErrorIs(t, err, domain.ErrNoValidOrder)
	})

	t.Run("falla del insert revierte fulfilled_at", func(t *testing.T) {
		resetDemo(t, pool)
		_, err := pool.Exec(ctx, `ALTER TABLE product_warehouse ADD CONSTRAINT price_cap CHECK (price < 10)`)
		require.NoError(t, err)
		t.Cleanup(func() {
			_, _ = pool.Exec(context.Background(), `ALTER TABLE product_warehouse DROP CONSTRAINT IF EXISTS price_cap`)
		})

		_, err = uc.Fulfill(ctx, demoRequest)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDatabase)

		assert.Nil(t, fulfilledAt(t, pool, 7), "el UPDATE se revierte con la transacción")
		assert.Zero(t, countReceipts(t, pool))
	})

	t.Run("dos recepciones concurrentes de la misma orden", func(t *testing.T) {
		resetDemo(t, pool)

		type result struct {
			id  int
			err error
		}
		start := make(chan struct{})
		results := make(chan result, 2)
		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				id, err := uc.Fulfill(ctx, demoRequest)
				results <- result{id, err}
			}()
		}
		close(start)
		wg.Wait()
		close(results)

		var ok, lost int
		for r := range results {
			switch {
			case r.err == nil:
				ok++
				assert.Positive(t, r.id)
			case errors.Is(r.err, domain.ErrConflict), errors.Is(r.err, domain.ErrNoValidOrder):
				lost++
				assert.Zero(t, r.id)
			default:
				t.Errorf("error inesperado: %v", r.err)
			}
		}
		assert.Equal(t, 1, ok, "una sola recepción gana")
		assert.Equal(t, 1, lost)
		assert.Equal(t, 1, countReceipts(t, pool))
		assert.NotNil(t, fulfilledAt(t, pool, 7))
	})

	t.Run("elige la orden más antigua", func(t *testing.T) {
		resetDemo(t, pool)
		_, err := pool.Exec(ctx, `
			INSERT INTO "order" (id_order, id_product, amount, created_at) VALUES
				(20, 1, 5, '2022-06-01T00:00:00Z'),
				(21, 1, 5, '2022-06-01T00:00:00Z')`)
		require.NoError(t, err)

		id, err := uc.Fulfill(ctx, demoRequest)
		require.NoError(t, err)

		var orderID int
		require.NoError(t, pool.QueryRow(ctx,
			`SELECT id_order FROM product_warehouse WHERE id_product_warehouse = $1`, id).Scan(&orderID))
		assert.Equal(t, 20, orderID, "mismo created_at: gana el id_order menor")
		assert.Nil(t, fulfilledAt(t, pool, 7))
	})
}

func TestProcedure_Postgres(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	uc := fulfillment.NewProcedureUseCase(
		postgres.NewProcedureRepository(pool, "add_product_to_warehouse"), 10*time.Second, zerolog.Nop())

	t.Run("escenario de ejemplo", func(t *testing.T) {
		resetDemo(t, pool)

		id, err := uc.FulfillViaProcedure(ctx, demoRequest)
		require.NoError(t, err)
		assert.Positive(t, id)

		var price decimal.Decimal
		require.NoError(t, pool.QueryRow(ctx,
			`SELECT price FROM product_warehouse WHERE id_product_warehouse = $1`, id).Scan(&price))
		assert.True(t, decimal.RequireFromString("49.95").Equal(price))
		assert.NotNil(t, fulfilledAt(t, pool, 7))
	})

	t.Run("RAISE del motor como DatabaseError", func(t *testing.T) {
		resetDemo(t, pool)

		req := demoRequest
		req.ProductID = 999
		_, err := uc.FulfillViaProcedure(ctx, req)
		require.Error(t, err)

		var dbErr *domain.DatabaseError
		require.ErrorAs(t, err, &dbErr)
		assert.Equal(t, "Product not found", dbErr.Message)
		assert.Zero(t, countReceipts(t, pool))
	})

	t.Run("esquema calificado", func(t *testing.T) {
		resetDemo(t, pool)

		qualified := fulfillment.NewProcedureUseCase(
			postgres.NewProcedureRepository(pool, "public.add_product_to_warehouse"), 10*time.Second, zerolog.Nop())
		_, err := qualified.FulfillViaProcedure(ctx, demoRequest)
		assert.NoError(t, err)
	})
}
