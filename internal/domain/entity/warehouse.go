package entity

// Warehouse representa una bodega donde se reciben productos. Solo se verifica su existencia.
type Warehouse struct {
	ID      int
	Name    string
	Address string
}
