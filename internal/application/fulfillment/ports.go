package fulfillment

import (
	"context"

	"github.com/jhoicas/warehouse-fulfillment/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error la transacción se revierte; la conexión se libera en todos los caminos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		orderRepo repository.OrderRepository,
		receiptRepo repository.ProductWarehouseRepository,
	) error) error
}
