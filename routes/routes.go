package routes

import (
	"salespulse/handlers"
	"salespulse/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Analytics Routes ---
	analytics := api.Group("/analytics", middleware.JWTMiddleware)
	analytics.Get("/summary", handlers.HandleGetSalesSummary)
	analytics.Get("/trends", handlers.HandleGetSalesTrends)
	analytics.Get("/segments", handlers.HandleGetCustomerSegments)
	analytics.Get("/customers/value", handlers.HandleGetCustomerValue)
	analytics.Get("/elasticity", handlers.HandleGetPriceElasticity)
	analytics.Get("/alerts", handlers.HandleGetSalesAlerts)
	analytics.Get("/cohorts", handlers.HandleGetCohortRetention)
	// Insight generation calls out to a paid model, so it stays admin-only.
	analytics.Post("/insights", middleware.AdminRequired, handlers.HandleGenerateInsights)
}
