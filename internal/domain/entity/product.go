package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. El flujo de recepción solo verifica que exista
// y lee Price para valorizar la entrada.
type Product struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal // precio unitario
}
