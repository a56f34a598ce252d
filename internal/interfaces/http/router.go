package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phonefixpro/phonefix-api/internal/application/auth"
	"github.com/phonefixpro/phonefix-api/internal/application/usecase"
	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ItemUC      *usecase.ItemUseCase
	InventoryUC *usecase.InventoryUseCase
	SaleUC      *usecase.SaleUseCase
	ReceiptUC   *usecase.ReceiptUseCase
	CustomerUC  *usecase.CustomerUseCase
	PhoneUC     *usecase.PhoneUseCase
	DashboardUC *usecase.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Items (protegido; borrar solo admin)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/category/:category", itemHandler.ListByCategory)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)

	// Inventario (protegido)
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/low-stock", inventoryHandler.ListLowStock)
	inv.Get("/summary", inventoryHandler.Summary)
	inv.Put("/:itemId", inventoryHandler.UpdateLevel)

	// Ventas (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/date-range", saleHandler.ListByDateRange)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt", saleHandler.Receipt)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	// Clientes (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Teléfonos de reventa (protegido; borrar solo admin)
	phones := protected.Group("/phones")
	phoneHandler := NewPhoneHandler(deps.PhoneUC)
	phones.Post("/", phoneHandler.Create)
	phones.Get("/", phoneHandler.List)
	phones.Get("/:id", phoneHandler.GetByID)
	phones.Put("/:id", phoneHandler.Update)
	phones.Delete("/:id", adminOnly, phoneHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
