package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sales-dashboard/internal/application/analytics"
	"github.com/jhoicas/sales-dashboard/internal/application/auth"
	"github.com/jhoicas/sales-dashboard/internal/application/inventory"
	"github.com/jhoicas/sales-dashboard/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InventoryUC *inventory.InventoryUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *report.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	requireAuth := AuthMiddleware(deps.JWTSecret)
	authGroup.Post("/logout", requireAuth, authHandler.Logout)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Inventory
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := api.Group("/inventory", requireAuth)
	inv.Post("/upload", inventoryHandler.Upload)
	inv.Get("/", inventoryHandler.View)
	inv.Put("/stock", inventoryHandler.UpdateStock)
	inv.Post("/products", inventoryHandler.AddProduct)
	inv.Post("/save", inventoryHandler.Save)

	// Settings
	settingsHandler := NewSettingsHandler(deps.InventoryUC)
	settings := api.Group("/settings", requireAuth)
	settings.Put("/reorder-level", settingsHandler.ReorderLevel)
	settings.Post("/categories", settingsHandler.Categories)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dash := api.Group("/dashboard", requireAuth)
	dash.Get("/", dashboardHandler.GetDashboard)
	dash.Get("/sales-trends", dashboardHandler.GetSalesTrends)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := api.Group("/reports", requireAuth)
	reports.Get("/:type", reportHandler.Get)
	reports.Get("/:type/csv", reportHandler.CSV)
	reports.Get("/:type/pdf", reportHandler.PDF)
}
