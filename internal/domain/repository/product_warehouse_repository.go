package repository

import (
	"context"
	"time"

	"github.com/jhoicas/warehouse-fulfillment/internal/domain/entity"
)

// ProductWarehouseRepository define el puerto de escritura de recepciones (DIP).
type ProductWarehouseRepository interface {
	// Create inserta la recepción y devuelve el ID generado.
	Create(ctx context.Context, receipt *entity.ProductWarehouse) (int, error)
}

// ProcedureRepository delega la recepción completa a una rutina del servidor.
type ProcedureRepository interface {
	AddProductToWarehouse(ctx context.Context, productID, warehouseID, amount int, createdAt time.Time) (int, error)
}
