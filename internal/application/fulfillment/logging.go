package fulfillment

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jhoicas/warehouse-fulfillment/internal/application/dto"
	"github.com/jhoicas/warehouse-fulfillment/internal/domain"
)

// loggerFor prefiere el logger de la petición (con request_id) guardado en ctx por el middleware HTTP.
func loggerFor(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return fallback
}

func logOutcome(l *zerolog.Logger, path string, in dto.ProductWarehouseRequest, id int, err error) {
	var ev *zerolog.Event
	switch {
	case err == nil:
		ev = l.Debug().Int("id_product_warehouse", id)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrConflict):
		ev = l.Warn().Err(err)
	default:
		ev = l.Error().Err(err)
	}
	ev.Str("path", path).
		Int("id_product", in.ProductID).
		Int("id_warehouse", in.WarehouseID).
		Int("amount", in.Amount).
		Time("created_at", in.CreatedAt).
		Msg("recepción en bodega")
}
