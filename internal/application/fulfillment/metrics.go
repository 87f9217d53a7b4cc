package fulfillment

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jhoicas/warehouse-fulfillment/internal/domain"
)

const (
	pathWorkflow  = "workflow"
	pathProcedure = "stored_procedure"
)

// metrics contador fulfillment.requests por camino y resultado. Sin MeterProvider
// configurado el global de otel es no-op.
type metrics struct {
	requests metric.Int64Counter
}

func newMetrics() *metrics {
	meter := otel.Meter("github.com/jhoicas/warehouse-fulfillment/internal/application/fulfillment")
	counter, err := meter.Int64Counter("fulfillment.requests",
		metric.WithDescription("Recepciones en bodega procesadas, por camino y resultado"),
	)
	if err != nil {
		otel.Handle(err)
	}
	return &metrics{requests: counter}
}

func (m *metrics) record(ctx context.Context, path string, err error) {
	if m == nil || m.requests == nil {
		return
	}
	m.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("path", path),
		attribute.String("outcome", outcome(err)),
	))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrMissingResult):
		return "missing_result"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, domain.ErrDatabase):
		return "database_error"
	default:
		return "error"
	}
}
