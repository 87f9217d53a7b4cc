package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductWarehouse registro de recepción en bodega ligado a la orden que cumple.
// Se crea una sola vez por recepción exitosa; nunca se actualiza ni se borra.
type ProductWarehouse struct {
	ID          int
	WarehouseID int
	ProductID   int
	OrderID     int
	Amount      int
	Price       decimal.Decimal // Amount * Product.Price
	CreatedAt   time.Time
}

// ReceiptPrice valoriza una recepción: cantidad por precio unitario.
func ReceiptPrice(amount int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(amount)))
}
