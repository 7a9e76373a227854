package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"salespulse/analytics"
	"salespulse/config"
	"salespulse/database"
	"salespulse/middleware"
	"salespulse/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// HandleGenerateInsights narrates the computed metrics with Gemini: the
// model gets the numbers the analytics engine produced, never raw rows,
// and answers with a qualitative summary plus positive/negative factors.
// POST /api/v1/analytics/insights
func HandleGenerateInsights(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var req models.InsightRequest
	if err := c.BodyParser(&req); err != nil && err != fiber.ErrUnprocessableEntity {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	log.Printf("[INSIGHTS] Request - User: %s, Focus: %q", claims.UserID, req.Focus)

	period, err := reportWindow(c)
	if err != nil {
		log.Printf("[INSIGHTS] Invalid date parameter: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date format"})
	}

	records, err := database.LoadSaleRecords(context.Background(), period.StartDate, period.EndDate)
	if err != nil {
		log.Printf("[INSIGHTS] Failed to load sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load sales data"})
	}

	clean, _ := analytics.Clean(records, time.Now())
	series := analytics.MonthlySeries(clean)

	metrics := map[string]interface{}{
		"totalRevenue":      analytics.TotalRevenue(clean),
		"averageOrderValue": analytics.AverageOrderValue(clean),
		"topProducts":       analytics.TopProducts(clean, 5),
		"categories":        analytics.CategoryPerformance(clean),
		"forecast":          analytics.ForecastRevenue(series, config.AppConfig.ForecastHorizon),
		"alerts":            analytics.DetectAlerts(clean, analytics.DefaultAlertThresholds),
	}

	prompt, err := buildInsightPrompt(req.Focus, metrics)
	if err != nil {
		log.Printf("[INSIGHTS] Failed to build prompt: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to prepare metrics"})
	}

	analysis, err := generateAnalysis(prompt)
	if err != nil {
		log.Printf("[INSIGHTS] Gemini request failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate insights"})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"reportName":  "AI Sales Insights",
		"generatedAt": time.Now(),
		"period":      period,
		"analysis":    analysis,
	})
}

// buildInsightPrompt packs the computed metrics into a prompt that asks
// for strict JSON matching models.AiAnalysis.
func buildInsightPrompt(focus string, metrics map[string]interface{}) (string, error) {
	payload, err := json.Marshal(metrics)
	if err != nil {
		return "", fmt.Errorf("failed to marshal metrics: %w", err)
	}

	focusLine := ""
	if focus != "" {
		focusLine = fmt.Sprintf(" Focus on %s.", focus)
	}

	return fmt.Sprintf(
		`You are a retail business analyst. Below are computed sales metrics as JSON.%s
Respond with ONLY a JSON object of the form {"summary": string, "positive_factors": [string], "negative_factors": [string]}. No markdown.

Metrics: %s`,
		focusLine, string(payload),
	), nil
}

// generateAnalysis calls Gemini and parses the response into an
// AiAnalysis, falling back to a summary-only result when the model does
// not return clean JSON.
func generateAnalysis(prompt string) (models.AiAnalysis, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
	if err != nil {
		return models.AiAnalysis{}, fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-pro")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return models.AiAnalysis{}, fmt.Errorf("failed to generate insights: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return models.AiAnalysis{}, fmt.Errorf("empty response from model")
	}

	raw := strings.TrimSpace(fmt.Sprint(resp.Candidates[0].Content.Parts[0]))
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var analysis models.AiAnalysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &analysis); err != nil {
		return models.AiAnalysis{Summary: raw}, nil
	}
	return analysis, nil
}
