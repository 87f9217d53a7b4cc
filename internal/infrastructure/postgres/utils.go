package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/warehouse-fulfillment/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// dbError envuelve un error del driver como *domain.DatabaseError. Con *pgconn.PgError usa
// el mensaje del motor (el texto de RAISE EXCEPTION en rutinas). Cancelaciones y timeouts de
// ctx se devuelven tal cual.
func dbError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var already *domain.DatabaseError
	if errors.As(err, &already) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &domain.DatabaseError{Message: pgErr.Message, Err: err}
	}
	return &domain.DatabaseError{Err: err}
}
