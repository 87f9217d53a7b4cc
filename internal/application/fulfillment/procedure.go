package fulfillment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/warehouse-fulfillment/internal/application/dto"
	"github.com/jhoicas/warehouse-fulfillment/internal/domain/repository"
)

// ProcedureUseCase delega la recepción completa a la rutina del servidor. La atomicidad y las
// reglas de negocio viven dentro de la rutina; aquí no se abre transacción.
type ProcedureUseCase struct {
	repo    repository.ProcedureRepository
	timeout time.Duration
	log     zerolog.Logger
	metrics *metrics
}

// NewProcedureUseCase construye el caso de uso. timeout <= 0 usa DefaultTimeout.
func NewProcedureUseCase(repo repository.ProcedureRepository, timeout time.Duration, log zerolog.Logger) *ProcedureUseCase {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ProcedureUseCase{repo: repo, timeout: timeout, log: log, metrics: newMetrics()}
}

// FulfillViaProcedure reenvía los cuatro campos a la rutina y devuelve el ID que genera.
// Errores: *domain.DatabaseError si el motor reporta un error, domain.ErrProcedureMissingID
// si la rutina no devuelve identificador.
func (uc *ProcedureUseCase) FulfillViaProcedure(ctx context.Context, in dto.ProductWarehouseRequest) (int, error) {
	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := uc.repo.AddProductToWarehouse(callCtx, in.ProductID, in.WarehouseID, in.Amount, in.CreatedAt)
	if err != nil {
		id = 0
	}

	uc.metrics.record(ctx, pathProcedure, err)
	logOutcome(loggerFor(ctx, &uc.log), pathProcedure, in, id, err)
	return id, err
}
