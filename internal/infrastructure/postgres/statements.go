package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/warehouse-fulfillment/internal/domain"
)

// queryScalar ejecuta una consulta parametrizada y devuelve la primera columna de la primera fila.
// found=false si no hay filas o el valor es NULL. Los errores del motor se devuelven sin modificar.
func queryScalar[T any](ctx context.Context, q Querier, sql string, args pgx.NamedArgs) (value T, found bool, err error) {
	if q == nil {
		return value, false, domain.ErrNoTransaction
	}
	var out *T
	if err := q.QueryRow(ctx, sql, args).Scan(&out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return value, false, nil
		}
		return value, false, err
	}
	if out == nil {
		return value, false, nil
	}
	return *out, true, nil
}

// execStatement ejecuta una sentencia parametrizada sin filas de retorno y devuelve las filas afectadas.
func execStatement(ctx context.Context, q Querier, sql string, args pgx.NamedArgs) (int64, error) {
	if q == nil {
		return 0, domain.ErrNoTransaction
	}
	tag, err := q.Exec(ctx, sql, args)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
