package analytics

import (
	"sort"
	"time"

	"salespulse/models"
)

// MonthlyPoint is one month of the revenue series.
type MonthlyPoint struct {
	Month   string  `json:"month"` // "2006-01"
	Index   int     `json:"index"` // 1-based position in the series
	Revenue float64 `json:"revenue"`
}

// ForecastPoint is a projected month beyond the observed series.
type ForecastPoint struct {
	Period  int     `json:"period"` // continues the series index
	Revenue float64 `json:"revenue"`
}

// ForecastResult is the outcome of fitting a linear trend to the
// monthly series. OK is false when there are not enough points to fit
// anything, in which case Reason says why and no forecast is invented.
type ForecastResult struct {
	OK         bool            `json:"ok"`
	Reason     string          `json:"reason,omitempty"`
	Slope      float64         `json:"slope"`
	Intercept  float64         `json:"intercept"`
	Confidence string          `json:"confidence,omitempty"` // "high" or "medium"
	Points     []MonthlyPoint  `json:"points"`
	Forecasts  []ForecastPoint `json:"forecasts,omitempty"`
}

// minTrendPoints is the fewest monthly observations a fit will accept.
const minTrendPoints = 3

// MonthlySeries builds the ordered monthly revenue series from the
// record set. Only months with at least one sale appear.
func MonthlySeries(records []models.SaleRecord) []MonthlyPoint {
	buckets := AggregateBy(records, ByMonth)

	points := make([]MonthlyPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, MonthlyPoint{Month: b.Key, Revenue: round2(b.Revenue)})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	for i := range points {
		points[i].Index = i + 1
	}
	return points
}

// ForecastRevenue fits ordinary least squares over x = 1..n and
// projects horizon months past the series, clamping projections at
// zero since revenue cannot go negative. Fewer than three points
// yields an explicit insufficient-data result.
func ForecastRevenue(points []MonthlyPoint, horizon int) ForecastResult {
	result := ForecastResult{Points: points}
	if len(points) < minTrendPoints {
		result.Reason = "insufficient data: need at least 3 monthly points"
		return result
	}

	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		x := float64(p.Index)
		sumX += x
		sumY += p.Revenue
		sumXY += x * p.Revenue
		sumXX += x * x
	}
	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	result.OK = true
	result.Slope = slope
	result.Intercept = intercept
	result.Confidence = "medium"
	if len(points) >= 6 {
		result.Confidence = "high"
	}

	if horizon < 1 {
		horizon = 1
	}
	for k := 1; k <= horizon; k++ {
		x := float64(len(points) + k)
		projected := slope*x + intercept
		if projected < 0 {
			projected = 0
		}
		result.Forecasts = append(result.Forecasts, ForecastPoint{
			Period:  len(points) + k,
			Revenue: round2(projected),
		})
	}
	return result
}

// SeasonalIndices computes a multiplicative seasonal index per calendar
// month: the mean revenue of that month across years divided by the
// overall monthly mean. 1.0 means an average month; November/December
// in retail data typically land well above it.
func SeasonalIndices(records []models.SaleRecord) map[time.Month]float64 {
	totals := map[time.Month]float64{}
	counts := map[time.Month]int{}
	for _, b := range AggregateBy(records, ByMonth) {
		t, err := time.Parse("2006-01", b.Key)
		if err != nil {
			continue
		}
		totals[t.Month()] += b.Revenue
		counts[t.Month()]++
	}
	if len(totals) == 0 {
		return map[time.Month]float64{}
	}

	var overall float64
	var months int
	for m, total := range totals {
		overall += total / float64(counts[m])
		months++
	}
	overall /= float64(months)

	indices := make(map[time.Month]float64, len(totals))
	for m, total := range totals {
		if overall > 0 {
			indices[m] = round2(total / float64(counts[m]) / overall)
		}
	}
	return indices
}
