package entity

import "time"

// Order pedido de compra preexistente. FulfilledAt es nil mientras la orden no ha sido recibida.
// Una orden es elegible solo si ningún ProductWarehouse la referencia.
type Order struct {
	ID          int
	ProductID   int
	Amount      int
	CreatedAt   time.Time
	FulfilledAt *time.Time
}

