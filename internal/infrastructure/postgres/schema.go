package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed sql/schema.sql
var schemaSQL string

//go:embed sql/demo.sql
var demoSQL string

// ApplySchema crea tablas y la rutina add_product_to_warehouse si no existen.
// Solo para desarrollo local (cmd/seed) y pruebas de integración; no es un sistema de migraciones.
func ApplySchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// SeedDemo inserta el escenario de ejemplo (producto 1, bodega 2, orden 7). Es idempotente.
func SeedDemo(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, demoSQL); err != nil {
		return fmt.Errorf("seed demo: %w", err)
	}
	return nil
}
