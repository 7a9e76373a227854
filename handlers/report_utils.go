package handlers

import (
	"time"

	"salespulse/models"

	"github.com/gofiber/fiber/v2"
)

// parseReportDate accepts the date formats clients actually send.
func parseReportDate(dateStr string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	var lastErr error
	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// reportWindow reads the startDate/endDate query parameters, defaulting
// to the last two years ending now.
func reportWindow(c *fiber.Ctx) (models.ReportPeriod, error) {
	startDateStr := c.Query("startDate", time.Now().AddDate(-2, 0, 0).Format(time.RFC3339))
	endDateStr := c.Query("endDate", time.Now().Format(time.RFC3339))

	startDate, err := parseReportDate(startDateStr)
	if err != nil {
		return models.ReportPeriod{}, err
	}
	endDate, err := parseReportDate(endDateStr)
	if err != nil {
		return models.ReportPeriod{}, err
	}

	return models.ReportPeriod{StartDate: startDate, EndDate: endDate}, nil
}
