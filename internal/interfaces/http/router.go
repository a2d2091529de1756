package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	appanalytics "github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	ItemUC        *usecase.ItemUseCase
	CategoryUC    *usecase.CategoryUseCase
	SupplierUC    *usecase.SupplierUseCase
	DestinationUC *usecase.DestinationUseCase
	LedgerUC      *ledger.UseCase
	DashboardUC   *appanalytics.DashboardUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Cada grupo protegido lleva el gate de
// vista de su recurso; las mutaciones llevan además el gate de su acción.
// La tabla de permisos (rol × recurso × acción) es la única fuente de verdad.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth. El login va limitado por IP contra fuerza bruta.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Minute,
	}), authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Todo lo demás requiere sesión.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard
	dashboard := protected.Group("/dashboard", RequirePermission(domain.ResourceDashboard, domain.ActionView))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/chart", dashboardHandler.GetChartData)
	dashboard.Get("/low-stock", dashboardHandler.GetLowStockItems)

	// Items
	items := protected.Group("/items", RequirePermission(domain.ResourceItems, domain.ActionView))
	itemHandler := NewItemHandler(deps.ItemUC, deps.LedgerUC)
	items.Get("/", itemHandler.List)
	items.Get("/:id/history", itemHandler.History)
	items.Post("/", RequirePermission(domain.ResourceItems, domain.ActionCreate), itemHandler.Create)
	items.Put("/:id", RequirePermission(domain.ResourceItems, domain.ActionUpdate), itemHandler.Update)
	items.Delete("/:id", RequirePermission(domain.ResourceItems, domain.ActionDelete), itemHandler.Delete)

	// Transactions (ledger)
	transactions := protected.Group("/transactions", RequirePermission(domain.ResourceTransactions, domain.ActionView))
	transactionHandler := NewTransactionHandler(deps.LedgerUC)
	transactions.Get("/", transactionHandler.History)
	// El buscador vive bajo transactions: lo usa el formulario de salidas,
	// accesible para roles que no ven el catálogo de ítems.
	transactions.Get("/search_items", itemHandler.Search)
	transactions.Post("/in", RequirePermission(domain.ResourceTransactions, domain.ActionStockIn), transactionHandler.Inbound)
	transactions.Post("/out", RequirePermission(domain.ResourceTransactions, domain.ActionStockOut), transactionHandler.Outbound)
	transactions.Post("/:id/cancel", RequirePermission(domain.ResourceTransactions, domain.ActionCancel), transactionHandler.Cancel)
	transactions.Post("/:id/return", RequirePermission(domain.ResourceTransactions, domain.ActionReturn), transactionHandler.Return)

	// Categories
	categories := protected.Group("/categories", RequirePermission(domain.ResourceCategories, domain.ActionView))
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/active", categoryHandler.Options)
	categories.Get("/:id", categoryHandler.Get)
	categories.Post("/", RequirePermission(domain.ResourceCategories, domain.ActionCreate), categoryHandler.Create)
	categories.Put("/:id", RequirePermission(domain.ResourceCategories, domain.ActionUpdate), categoryHandler.Update)
	categories.Delete("/:id", RequirePermission(domain.ResourceCategories, domain.ActionDelete), categoryHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers", RequirePermission(domain.ResourceSuppliers, domain.ActionView))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/active", supplierHandler.Options)
	suppliers.Get("/:id", supplierHandler.Get)
	suppliers.Post("/", RequirePermission(domain.ResourceSuppliers, domain.ActionCreate), supplierHandler.Create)
	suppliers.Put("/:id", RequirePermission(domain.ResourceSuppliers, domain.ActionUpdate), supplierHandler.Update)
	suppliers.Delete("/:id", RequirePermission(domain.ResourceSuppliers, domain.ActionDelete), supplierHandler.Delete)

	// Destinations
	destinations := protected.Group("/destinations", RequirePermission(domain.ResourceDestinations, domain.ActionView))
	destinationHandler := NewDestinationHandler(deps.DestinationUC)
	destinations.Get("/", destinationHandler.List)
	destinations.Get("/active", destinationHandler.Options)
	destinations.Get("/:id", destinationHandler.Get)
	destinations.Post("/", RequirePermission(domain.ResourceDestinations, domain.ActionCreate), destinationHandler.Create)
	destinations.Put("/:id", RequirePermission(domain.ResourceDestinations, domain.ActionUpdate), destinationHandler.Update)
	destinations.Delete("/:id", RequirePermission(domain.ResourceDestinations, domain.ActionDelete), destinationHandler.Delete)

	// Users (solo admin según la tabla de permisos)
	users := protected.Group("/users", RequirePermission(domain.ResourceUsers, domain.ActionView))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", RequirePermission(domain.ResourceUsers, domain.ActionCreate), userHandler.Create)
	users.Delete("/:id", RequirePermission(domain.ResourceUsers, domain.ActionDelete), userHandler.Delete)
}
