package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/warehouse-fulfillment/internal/application/dto"
	"github.com/jhoicas/warehouse-fulfillment/internal/domain"
)

// workflowFulfiller lo implementa *fulfillment.WorkflowUseCase.
type workflowFulfiller interface {
	Fulfill(ctx context.Context, in dto.ProductWarehouseRequest) (int, error)
}

// procedureFulfiller lo implementa *fulfillment.ProcedureUseCase.
type procedureFulfiller interface {
	FulfillViaProcedure(ctx context.Context, in dto.ProductWarehouseRequest) (int, error)
}

// WarehouseHandler maneja las recepciones de producto en bodega.
type WarehouseHandler struct {
	workflow  workflowFulfiller
	procedure procedureFulfiller
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(workflow workflowFulfiller, procedure procedureFulfiller) *WarehouseHandler {
	return &WarehouseHandler{workflow: workflow, procedure: procedure}
}

// AddProductToWarehouse godoc
// @Summary      Registrar recepción de producto en bodega
// @Description  Valida producto y bodega, cumple la orden pendiente más antigua e inserta la recepción en una transacción.
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductWarehouseRequest  true  "idProduct, idWarehouse, amount, createdAt"
// @Success      200   {integer}  int  "IdProductWarehouse generado"
// @Failure      400   {object}   dto.ErrorResponse
// @Router       /api/warehouse [post]
func (h *WarehouseHandler) AddProductToWarehouse(c *fiber.Ctx) error {
	var in dto.ProductWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "Invalid request body: "+err.Error())
	}
	if err := in.Validate(); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	id, err := h.workflow.Fulfill(c.UserContext(), in)
	if err != nil {
		return badRequest(c, errorCode(err), err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(id)
}

// AddProductViaProcedure godoc
// @Summary      Registrar recepción vía rutina del servidor
// @Description  Misma entrada y salida que /api/warehouse; la lógica la ejecuta add_product_to_warehouse.
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductWarehouseRequest  true  "idProduct, idWarehouse, amount, createdAt"
// @Success      200   {integer}  int  "IdProductWarehouse generado"
// @Failure      400   {object}   dto.ErrorResponse  "errores del motor con prefijo 'Database error: '"
// @Router       /api/warehouse/stored-procedure [post]
func (h *WarehouseHandler) AddProductViaProcedure(c *fiber.Ctx) error {
	var in dto.ProductWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "Invalid request body: "+err.Error())
	}
	if err := in.Validate(); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	id, err := h.procedure.FulfillViaProcedure(c.UserContext(), in)
	if err != nil {
		var dbErr *domain.DatabaseError
		if errors.As(err, &dbErr) {
			return badRequest(c, "DATABASE", "Database error: "+dbErr.Error())
		}
		return badRequest(c, errorCode(err), err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(id)
}

// badRequest todas las fallas se reportan como 400; Code distingue el tipo.
func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, domain.ErrConflict):
		return "CONFLICT"
	case errors.Is(err, domain.ErrMissingResult):
		return "MISSING_RESULT"
	case errors.Is(err, domain.ErrDatabase):
		return "DATABASE"
	case errors.Is(err, domain.ErrConfiguration):
		return "CONFIGURATION"
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	default:
		return "INTERNAL"
	}
}
