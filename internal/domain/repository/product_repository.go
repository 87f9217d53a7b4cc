package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductRepository define el puerto de lectura de Product usado por el flujo de recepción (DIP).
type ProductRepository interface {
	Exists(ctx context.Context, productID int) (bool, error)
	// UnitPrice devuelve el precio unitario; found=false si el producto no existe.
	UnitPrice(ctx context.Context, productID int) (price decimal.Decimal, found bool, err error)
}
