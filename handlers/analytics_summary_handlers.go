package handlers

import (
	"context"
	"log"
	"time"

	"salespulse/analytics"
	"salespulse/database"

	"github.com/gofiber/fiber/v2"
)

// HandleGetSalesSummary returns the headline numbers: cleaning summary,
// total revenue, average order value, top products and the category
// breakdown.
// GET /api/v1/analytics/summary
func HandleGetSalesSummary(c *fiber.Ctx) error {
	period, err := reportWindow(c)
	if err != nil {
		log.Printf("[SUMMARY] Invalid date parameter: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date format"})
	}

	limit := c.QueryInt("limit", 5)

	records, err := database.LoadSaleRecords(context.Background(), period.StartDate, period.EndDate)
	if err != nil {
		log.Printf("[SUMMARY] Failed to load sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load sales data"})
	}

	clean, summary := analytics.Clean(records, time.Now())

	// Lossy by nature, so outlier trimming is opt-in per request.
	if c.QueryBool("trimOutliers", false) {
		var trimmed int
		clean, trimmed = analytics.TrimOutliers(clean)
		summary.OutliersTrimmed = trimmed
		summary.Final = len(clean)
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"reportName":        "Sales Summary",
		"generatedAt":       time.Now(),
		"period":            period,
		"cleaning":          summary,
		"totalRevenue":      analytics.TotalRevenue(clean),
		"averageOrderValue": analytics.AverageOrderValue(clean),
		"topProducts":       analytics.TopProducts(clean, limit),
		"categories":        analytics.CategoryPerformance(clean),
	})
}
