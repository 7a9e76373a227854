package analytics

import (
	"fmt"
	"sort"

	"salespulse/models"
)

// Alert severities, most urgent first.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Alert types.
const (
	AlertDecline   = "revenue_decline"
	AlertZeroSales = "zero_sales"
	AlertLowVolume = "low_volume"
)

// Alert flags a product whose recent sales look wrong. No alert is
// fatal to an analysis run; the list is advisory output.
type Alert struct {
	Product         string  `json:"product"`
	Severity        string  `json:"severity"`
	Type            string  `json:"type"`
	Message         string  `json:"message"`
	LastMonth       float64 `json:"lastMonth"`
	PrevMonth       float64 `json:"prevMonth"`
	DeclinePct      float64 `json:"declinePct,omitempty"`
	AvgMonthlyUnits float64 `json:"avgMonthlyUnits,omitempty"`
}

// AlertThresholds control when DetectAlerts fires.
type AlertThresholds struct {
	CriticalDeclinePct float64 // month-over-month revenue decline, percent
	WarningDeclinePct  float64
	LowVolumeUnits     float64 // average units per active month
}

// DefaultAlertThresholds matches the reporting team's standing numbers.
var DefaultAlertThresholds = AlertThresholds{
	CriticalDeclinePct: 30,
	WarningDeclinePct:  15,
	LowVolumeUnits:     2,
}

var severityRank = map[string]int{
	SeverityCritical: 0,
	SeverityWarning:  1,
	SeverityInfo:     2,
}

// DetectAlerts compares each product's revenue in the dataset's two
// most recent calendar months and flags declines past the thresholds,
// products that went silent after prior sales, and chronic low movers.
// A product with no sales in the latest month still gets judged, which
// is the whole point of the zero-sales check. The result is sorted by
// descending severity, then product name.
func DetectAlerts(records []models.SaleRecord, th AlertThresholds) []Alert {
	series := MonthlySeries(records)
	if len(series) == 0 {
		return []Alert{}
	}
	lastMonth := series[len(series)-1].Month
	prevMonth := ""
	if len(series) >= 2 {
		prevMonth = series[len(series)-2].Month
	}

	type productStats struct {
		byMonth map[string]float64
		units   int
	}
	byProduct := map[string]*productStats{}
	for _, r := range records {
		p, ok := byProduct[r.Product]
		if !ok {
			p = &productStats{byMonth: map[string]float64{}}
			byProduct[r.Product] = p
		}
		p.byMonth[MonthKey(r.OrderDate)] += r.Total
		p.units += r.Quantity
	}

	alerts := []Alert{}
	for product, stats := range byProduct {
		if prevMonth != "" {
			last := stats.byMonth[lastMonth]
			prev := stats.byMonth[prevMonth]

			switch {
			case last == 0 && prev > 0:
				alerts = append(alerts, Alert{
					Product:   product,
					Severity:  SeverityCritical,
					Type:      AlertZeroSales,
					Message:   fmt.Sprintf("%s had no sales this month after $%.2f the month before", product, prev),
					LastMonth: last,
					PrevMonth: prev,
				})
			case prev > 0:
				decline := (prev - last) / prev * 100
				if decline > th.CriticalDeclinePct {
					alerts = append(alerts, declineAlert(product, SeverityCritical, last, prev, decline))
				} else if decline > th.WarningDeclinePct {
					alerts = append(alerts, declineAlert(product, SeverityWarning, last, prev, decline))
				}
			}
			// prev == 0: nothing to compare against, skip the decline check.
		}

		// Low-volume notice: quiet products that still sell something.
		activeMonths := len(stats.byMonth)
		if activeMonths > 0 {
			avg := float64(stats.units) / float64(activeMonths)
			if avg > 0 && avg < th.LowVolumeUnits {
				alerts = append(alerts, Alert{
					Product:         product,
					Severity:        SeverityInfo,
					Type:            AlertLowVolume,
					Message:         fmt.Sprintf("%s averages %.1f units per month", product, avg),
					AvgMonthlyUnits: round2(avg),
				})
			}
		}
	}

	sort.Slice(alerts, func(i, j int) bool {
		if severityRank[alerts[i].Severity] != severityRank[alerts[j].Severity] {
			return severityRank[alerts[i].Severity] < severityRank[alerts[j].Severity]
		}
		return alerts[i].Product < alerts[j].Product
	})
	return alerts
}

func declineAlert(product, severity string, last, prev, decline float64) Alert {
	return Alert{
		Product:    product,
		Severity:   severity,
		Type:       AlertDecline,
		Message:    fmt.Sprintf("%s revenue fell %.1f%% month over month ($%.2f to $%.2f)", product, decline, prev, last),
		LastMonth:  last,
		PrevMonth:  prev,
		DeclinePct: round2(decline),
	}
}
