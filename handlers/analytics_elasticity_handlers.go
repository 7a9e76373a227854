package handlers

import (
	"context"
	"log"
	"time"

	"salespulse/analytics"
	"salespulse/config"
	"salespulse/database"

	"github.com/gofiber/fiber/v2"
)

// HandleGetPriceElasticity returns per-category price elasticity
// estimates. Categories without enough price variation report why
// instead of a number.
// GET /api/v1/analytics/elasticity
func HandleGetPriceElasticity(c *fiber.Ctx) error {
	period, err := reportWindow(c)
	if err != nil {
		log.Printf("[ELASTICITY] Invalid date parameter: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date format"})
	}

	bandWidth := config.AppConfig.PriceBandWidth
	if raw := c.QueryFloat("bandWidth", 0); raw > 0 {
		bandWidth = raw
	}

	records, err := database.LoadSaleRecords(context.Background(), period.StartDate, period.EndDate)
	if err != nil {
		log.Printf("[ELASTICITY] Failed to load sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load sales data"})
	}

	clean, _ := analytics.Clean(records, time.Now())

	return c.JSON(fiber.Map{
		"success":     true,
		"reportName":  "Price Elasticity",
		"generatedAt": time.Now(),
		"period":      period,
		"bandWidth":   bandWidth,
		"categories":  analytics.PriceElasticity(clean, bandWidth),
	})
}
