package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/stock"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	Ledger    *stock.LedgerUseCase
	Movements *stock.MovementsUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Público
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "pong"})
	})

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock ledger (protegido)
	stockHandler := NewStockHandler(deps.Ledger, deps.Movements)
	protected.Post("/stock-in", stockHandler.StockIn)
	protected.Post("/stock-out", stockHandler.StockOut)
	protected.Post("/adjust-stock", stockHandler.AdjustStock)
	protected.Get("/stock-movements", stockHandler.ListMovements)
}
