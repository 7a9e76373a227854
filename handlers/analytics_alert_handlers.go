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

// HandleGetSalesAlerts returns decline, zero-sales and low-volume
// alerts sorted by severity.
// GET /api/v1/analytics/alerts
func HandleGetSalesAlerts(c *fiber.Ctx) error {
	period, err := reportWindow(c)
	if err != nil {
		log.Printf("[ALERTS] Invalid date parameter: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date format"})
	}

	records, err := database.LoadSaleRecords(context.Background(), period.StartDate, period.EndDate)
	if err != nil {
		log.Printf("[ALERTS] Failed to load sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load sales data"})
	}

	clean, _ := analytics.Clean(records, time.Now())
	alerts := analytics.DetectAlerts(clean, analytics.AlertThresholds{
		CriticalDeclinePct: config.AppConfig.CriticalDeclinePct,
		WarningDeclinePct:  config.AppConfig.WarningDeclinePct,
		LowVolumeUnits:     config.AppConfig.LowVolumeUnits,
	})

	return c.JSON(fiber.Map{
		"success":     true,
		"reportName":  "Sales Alerts",
		"generatedAt": time.Now(),
		"period":      period,
		"alerts":      alerts,
	})
}
