package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Workflow  workflowFulfiller
	Procedure procedureFulfiller
	Logger    zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Logger))

	warehouse := api.Group("/warehouse")
	warehouseHandler := NewWarehouseHandler(deps.Workflow, deps.Procedure)
	warehouse.Post("/", warehouseHandler.AddProductToWarehouse)
	warehouse.Post("/stored-procedure", warehouseHandler.AddProductViaProcedure)
}
