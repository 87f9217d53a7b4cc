package repository

import "context"

// WarehouseRepository define el puerto de lectura de Warehouse (DIP).
type WarehouseRepository interface {
	Exists(ctx context.Context, warehouseID int) (bool, error)
}
