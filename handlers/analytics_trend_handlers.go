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

// HandleGetSalesTrends returns the monthly revenue series, the fitted
// linear trend with its forecast, and per-calendar-month seasonal
// indices.
// GET /api/v1/analytics/trends
func HandleGetSalesTrends(c *fiber.Ctx) error {
	period, err := reportWindow(c)
	if err != nil {
		log.Printf("[TRENDS] Invalid date parameter: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date format"})
	}

	horizon := c.QueryInt("months", config.AppConfig.ForecastHorizon)

	records, err := database.LoadSaleRecords(context.Background(), period.StartDate, period.EndDate)
	if err != nil {
		log.Printf("[TRENDS] Failed to load sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load sales data"})
	}

	clean, _ := analytics.Clean(records, time.Now())
	series := analytics.MonthlySeries(clean)
	forecast := analytics.ForecastRevenue(series, horizon)

	seasonal := fiber.Map{}
	for month, index := range analytics.SeasonalIndices(clean) {
		seasonal[month.String()] = index
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"reportName":      "Sales Trends & Forecast",
		"generatedAt":     time.Now(),
		"period":          period,
		"forecast":        forecast,
		"seasonalIndices": seasonal,
	})
}
