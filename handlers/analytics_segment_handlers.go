package handlers

import (
	"context"
	"log"
	"time"

	"salespulse/analytics"
	"salespulse/database"
	"salespulse/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleGetCustomerSegments returns the RFM table, paginated, plus the
// segment distribution across the whole customer population.
// GET /api/v1/analytics/segments
func HandleGetCustomerSegments(c *fiber.Ctx) error {
	period, err := reportWindow(c)
	if err != nil {
		log.Printf("[SEGMENTS] Invalid date parameter: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date format"})
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 25)

	records, err := database.LoadSaleRecords(context.Background(), period.StartDate, period.EndDate)
	if err != nil {
		log.Printf("[SEGMENTS] Failed to load sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load sales data"})
	}

	clean, _ := analytics.Clean(records, time.Now())
	customers := analytics.ScoreRFM(clean, analytics.ReferenceTime(clean))
	distribution := analytics.SegmentDistribution(customers)

	start, end := utils.PageBounds(len(customers), page, pageSize)

	return c.JSON(fiber.Map{
		"success":      true,
		"reportName":   "Customer Segments (RFM)",
		"generatedAt":  time.Now(),
		"period":       period,
		"distribution": distribution,
		"customers":    customers[start:end],
		"pagination":   utils.CreatePagination(len(customers), page, pageSize),
	})
}

// HandleGetCustomerValue returns customers ranked by estimated
// lifetime value.
// GET /api/v1/analytics/customers/value
func HandleGetCustomerValue(c *fiber.Ctx) error {
	period, err := reportWindow(c)
	if err != nil {
		log.Printf("[CLV] Invalid date parameter: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date format"})
	}

	limit := c.QueryInt("limit", 25)

	records, err := database.LoadSaleRecords(context.Background(), period.StartDate, period.EndDate)
	if err != nil {
		log.Printf("[CLV] Failed to load sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load sales data"})
	}

	clean, _ := analytics.Clean(records, time.Now())
	values := analytics.LifetimeValues(clean)
	if limit > 0 && len(values) > limit {
		values = values[:limit]
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"reportName":  "Customer Lifetime Value",
		"generatedAt": time.Now(),
		"period":      period,
		"customers":   values,
	})
}
