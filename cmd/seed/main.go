// seed prepara una base de datos PostgreSQL local para el servicio de recepción en bodega.
//
// Uso:
//
//	go run ./cmd/seed schema            # tablas + rutina add_product_to_warehouse
//	go run ./cmd/seed demo              # producto 1 (9.99), bodega 2, orden 7
//	go run ./cmd/seed demo --dsn postgres://...
//
// Sin --dsn usa el connection string "Default" de la configuración (CONNECTIONSTRINGS_DEFAULT o DATABASE_URL).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/warehouse-fulfillment/internal/infrastructure/postgres"
	"github.com/jhoicas/warehouse-fulfillment/pkg/config"
	"github.com/jhoicas/warehouse-fulfillment/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dsn     string
		timeout time.Duration
	)

	root := &cobra.Command{
		Use:           "seed",
		Short:         "Esquema y datos de ejemplo para warehouse-fulfillment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dsn, "dsn", "", "connection string PostgreSQL (por defecto el de la configuración)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "tope para conectar y ejecutar")

	run := func(step string, fn func(context.Context, postgres.Querier) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			log := logger.New(logger.Config{Env: "development", Level: "info"})

			pool, err := openPool(ctx, dsn)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := fn(ctx, pool); err != nil {
				return err
			}
			log.Info().Str("step", step).Msg("seed aplicado")
			return nil
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "schema",
			Short: "Crea tablas y la rutina add_product_to_warehouse",
			Args:  cobra.NoArgs,
			RunE:  run("schema", postgres.ApplySchema),
		},
		&cobra.Command{
			Use:   "demo",
			Short: "Inserta el escenario de ejemplo (requiere schema)",
			Args:  cobra.NoArgs,
			RunE:  run("demo", postgres.SeedDemo),
		},
	)
	return root
}

func openPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn != "" {
		return postgres.NewPoolFromDSN(ctx, dsn)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	return postgres.NewPool(ctx, cfg.DB)
}
