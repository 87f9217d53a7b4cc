package fulfillment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/warehouse-fulfillment/internal/application/dto"
	"github.com/jhoicas/warehouse-fulfillment/internal/domain"
	"github.com/jhoicas/warehouse-fulfillment/internal/domain/entity"
	"github.com/jhoicas/warehouse-fulfillment/internal/domain/repository"
)

// DefaultTimeout tope por llamada cuando no se configura otro.
const DefaultTimeout = 15 * time.Second

// WorkflowUseCase registra la recepción de un producto en bodega contra la orden pendiente
// más antigua, como una secuencia explícita de sentencias dentro de una transacción.
type WorkflowUseCase struct {
	txRunner TxRunner
	timeout  time.Duration
	log      zerolog.Logger
	metrics  *metrics
}

// NewWorkflowUseCase construye el caso de uso. timeout <= 0 usa DefaultTimeout.
func NewWorkflowUseCase(txRunner TxRunner, timeout time.Duration, log zerolog.Logger) *WorkflowUseCase {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &WorkflowUseCase{
		txRunner: txRunner,
		timeout:  timeout,
		log:      log,
		metrics:  newMetrics(),
	}
}

// Fulfill valida producto y bodega, elige la orden elegible, la marca como cumplida e inserta
// la recepción valorizada (Amount * precio unitario). Todo o nada: cualquier error revierte
// lo escrito en la misma llamada y se devuelve sin modificar.
//
// Errores: domain.ErrProductNotFound, domain.ErrWarehouseNotFound, domain.ErrNoValidOrder,
// domain.ErrOrderAlreadyFulfilled, domain.ErrInsertMissingID, *domain.DatabaseError.
func (uc *WorkflowUseCase) Fulfill(ctx context.Context, in dto.ProductWarehouseRequest) (int, error) {
	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	var newID int
	err := uc.txRunner.Run(callCtx, func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		orderRepo repository.OrderRepository,
		receiptRepo repository.ProductWarehouseRepository,
	) error {
		id, err := fulfillInTx(callCtx, productRepo, warehouseRepo, orderRepo, receiptRepo, in)
		if err != nil {
			return err
		}
		newID = id
		return nil
	})
	if err != nil {
		newID = 0
	}

	uc.metrics.record(ctx, pathWorkflow, err)
	logOutcome(loggerFor(ctx, &uc.log), pathWorkflow, in, newID, err)
	return newID, err
}

func fulfillInTx(
	ctx context.Context,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	orderRepo repository.OrderRepository,
	receiptRepo repository.ProductWarehouseRepository,
	in dto.ProductWarehouseRequest,
) (int, error) {
	ok, err := productRepo.Exists(ctx, in.ProductID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, domain.ErrProductNotFound
	}

	ok, err = warehouseRepo.Exists(ctx, in.WarehouseID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, domain.ErrWarehouseNotFound
	}

	orderID, found, err := orderRepo.FindEligible(ctx, in.ProductID, in.Amount, in.CreatedAt)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, domain.ErrNoValidOrder
	}

	if err := orderRepo.MarkFulfilled(ctx, orderID, in.CreatedAt); err != nil {
		return 0, err
	}

	unitPrice, found, err := productRepo.UnitPrice(ctx, in.ProductID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, domain.ErrProductNotFound
	}

	receipt := &entity.ProductWarehouse{
		WarehouseID: in.WarehouseID,
		ProductID:   in.ProductID,
		OrderID:     orderID,
		Amount:      in.Amount,
		Price:       entity.ReceiptPrice(in.Amount, unitPrice),
		CreatedAt:   in.CreatedAt,
	}
	return receiptRepo.Create(ctx, receipt)
}
