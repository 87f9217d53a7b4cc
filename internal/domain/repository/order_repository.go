package repository

import (
	"context"
	"time"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	// FindEligible busca una orden del producto y cantidad dados, creada antes de createdBefore
	// y sin recepción enlazada. found=false si no hay ninguna.
	FindEligible(ctx context.Context, productID, amount int, createdBefore time.Time) (orderID int, found bool, err error)
	MarkFulfilled(ctx context.Context, orderID int, fulfilledAt time.Time) error
}
