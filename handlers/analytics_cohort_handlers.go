package handlers

import (
	"context"
	"log"
	"time"

	"salespulse/analytics"
	"salespulse/database"

	"github.com/gofiber/fiber/v2"
)

// HandleGetCohortRetention returns the month-by-month retention curve
// for every first-purchase cohort in the window.
// GET /api/v1/analytics/cohorts
func HandleGetCohortRetention(c *fiber.Ctx) error {
	period, err := reportWindow(c)
	if err != nil {
		log.Printf("[COHORTS] Invalid date parameter: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date format"})
	}

	records, err := database.LoadSaleRecords(context.Background(), period.StartDate, period.EndDate)
	if err != nil {
		log.Printf("[COHORTS] Failed to load sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load sales data"})
	}

	clean, _ := analytics.Clean(records, time.Now())

	return c.JSON(fiber.Map{
		"success":     true,
		"reportName":  "Cohort Retention",
		"generatedAt": time.Now(),
		"period":      period,
		"cohorts":     analytics.CohortRetention(clean),
	})
}
