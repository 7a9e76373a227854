// Package analytics is the computational core of the service. It turns a
// flat slice of sales transactions into derived metrics: revenue
// aggregates, product rankings, RFM segmentation, lifetime value,
// trend/forecast series, price elasticity, decline alerts and cohort
// retention. Everything here is a pure function over its inputs: no I/O,
// no logging, and malformed or sparse data is reported through result
// values instead of errors.
package analytics

import (
	"math"
	"sort"
	"time"

	"salespulse/models"
)

// Reject reasons reported by Clean.
const (
	RejectBadQuantity = "non_positive_quantity"
	RejectBadPrice    = "non_positive_price"
	RejectBadDate     = "bad_date"
	RejectDuplicate   = "duplicate_order"
)

// CleaningSummary describes what Clean did to the input set.
type CleaningSummary struct {
	Initial          int            `json:"initial"`
	Final            int            `json:"final"`
	Rejected         int            `json:"rejected"`
	RejectedByReason map[string]int `json:"rejectedByReason"`
	TotalsRecomputed int            `json:"totalsRecomputed"`
	OutliersTrimmed  int            `json:"outliersTrimmed"`
}

// Clean validates field-level invariants and returns the records that
// survive. Records with a non-positive quantity or unit price, a zero
// date, or a date after ref are excluded and counted, never returned as
// an error. A repeated order ID is treated as a duplicate row and only
// the first occurrence is kept. A total that disagrees with
// quantity*unitPrice by more than a cent is recomputed rather than
// rejected, matching how the reporting pipeline has always treated
// rounding drift.
func Clean(records []models.SaleRecord, ref time.Time) ([]models.SaleRecord, CleaningSummary) {
	summary := CleaningSummary{
		Initial:          len(records),
		RejectedByReason: map[string]int{},
	}

	seen := make(map[string]bool, len(records))
	valid := make([]models.SaleRecord, 0, len(records))
	for _, r := range records {
		switch {
		case r.OrderID != "" && seen[r.OrderID]:
			summary.RejectedByReason[RejectDuplicate]++
			continue
		case r.Quantity <= 0:
			summary.RejectedByReason[RejectBadQuantity]++
			continue
		case r.UnitPrice <= 0:
			summary.RejectedByReason[RejectBadPrice]++
			continue
		case r.OrderDate.IsZero() || r.OrderDate.After(ref):
			summary.RejectedByReason[RejectBadDate]++
			continue
		}

		expected := round2(float64(r.Quantity) * r.UnitPrice)
		if math.Abs(r.Total-expected) > 0.01 {
			r.Total = expected
			summary.TotalsRecomputed++
		}
		if r.OrderID != "" {
			seen[r.OrderID] = true
		}
		valid = append(valid, r)
	}

	for _, n := range summary.RejectedByReason {
		summary.Rejected += n
	}
	summary.Final = len(valid)
	return valid, summary
}

// TrimOutliers drops records whose total lies outside the Tukey fences
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR] computed over the set's totals. This is
// a lossy step that removes legitimately extreme orders along with data
// errors, so it runs separately from Clean and only when the caller
// asks for it. Sets with fewer than four records pass through untouched.
func TrimOutliers(records []models.SaleRecord) ([]models.SaleRecord, int) {
	if len(records) < 4 {
		return records, 0
	}

	totals := make([]float64, len(records))
	for i, r := range records {
		totals[i] = r.Total
	}
	sort.Float64s(totals)

	q1 := quantile(totals, 0.25)
	q3 := quantile(totals, 0.75)
	iqr := q3 - q1
	lo, hi := q1-1.5*iqr, q3+1.5*iqr

	kept := make([]models.SaleRecord, 0, len(records))
	trimmed := 0
	for _, r := range records {
		if r.Total < lo || r.Total > hi {
			trimmed++
			continue
		}
		kept = append(kept, r)
	}
	return kept, trimmed
}

// quantile interpolates linearly between order statistics over an
// ascending slice, the convention dataframe libraries default to.
func quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	i := int(pos)
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(i)
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}

// ReferenceTime returns the dataset's reference clock: the most recent
// order date, or now when the set is empty.
func ReferenceTime(records []models.SaleRecord) time.Time {
	if len(records) == 0 {
		return time.Now()
	}
	ref := records[0].OrderDate
	for _, r := range records[1:] {
		if r.OrderDate.After(ref) {
			ref = r.OrderDate
		}
	}
	return ref
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
