package models

import "time"

// ReportPeriod defines the date window a report was computed over.
type ReportPeriod struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// AiAnalysis contains the qualitative insights from the Gemini model.
type AiAnalysis struct {
	Summary         string   `json:"summary"`
	PositiveFactors []string `json:"positive_factors"`
	NegativeFactors []string `json:"negative_factors"`
}

// InsightRequest asks the AI endpoint to narrate the computed metrics,
// optionally focused on one area ("revenue", "customers", "alerts").
type InsightRequest struct {
	Focus string `json:"focus"`
}
