package analytics

import (
	"sort"
	"time"

	"salespulse/models"
)

// CustomerRFM holds the recency/frequency/monetary measures for one
// customer together with the 1-5 scores and the resulting segment.
type CustomerRFM struct {
	CustomerID  string  `json:"customerId"`
	RecencyDays int     `json:"recencyDays"`
	Frequency   int     `json:"frequency"`
	Monetary    float64 `json:"monetary"`
	RScore      int     `json:"rScore"`
	FScore      int     `json:"fScore"`
	MScore      int     `json:"mScore"`
	Segment     string  `json:"segment"`
}

// Segment names, in rule-precedence order.
const (
	SegmentChampions         = "Champions"
	SegmentLoyal             = "Loyal Customers"
	SegmentPotentialLoyalist = "Potential Loyalists"
	SegmentNewCustomer       = "New Customers"
	SegmentAtRisk            = "At Risk"
	SegmentCannotLose        = "Cannot Lose Them"
	SegmentLost              = "Lost"
	SegmentOther             = "Others"
)

// ScoreRFM computes RFM measures, quintile scores and segments for
// every distinct customer in the record set. ref is the dataset's
// reference clock (see ReferenceTime). Records without a customer key
// are ignored. The result is sorted by monetary value, highest first.
func ScoreRFM(records []models.SaleRecord, ref time.Time) []CustomerRFM {
	type accum struct {
		last     time.Time
		orders   int
		monetary float64
	}
	byCustomer := map[string]*accum{}
	for _, r := range records {
		if r.CustomerID == "" {
			continue
		}
		a, ok := byCustomer[r.CustomerID]
		if !ok {
			a = &accum{}
			byCustomer[r.CustomerID] = a
		}
		a.orders++
		a.monetary += r.Total
		if r.OrderDate.After(a.last) {
			a.last = r.OrderDate
		}
	}
	if len(byCustomer) == 0 {
		return []CustomerRFM{}
	}

	customers := make([]CustomerRFM, 0, len(byCustomer))
	for id, a := range byCustomer {
		customers = append(customers, CustomerRFM{
			CustomerID:  id,
			RecencyDays: int(ref.Sub(a.last).Hours() / 24),
			Frequency:   a.orders,
			Monetary:    round2(a.monetary),
		})
	}
	// Deterministic order before scoring so tied positions resolve the
	// same way on every run.
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].CustomerID < customers[j].CustomerID
	})

	recency := make([]float64, len(customers))
	frequency := make([]float64, len(customers))
	monetary := make([]float64, len(customers))
	for i, c := range customers {
		recency[i] = float64(c.RecencyDays)
		frequency[i] = float64(c.Frequency)
		monetary[i] = float64(c.Monetary)
	}

	rScores := quintileScores(recency, false) // smaller recency scores higher
	fScores := quintileScores(frequency, true)
	mScores := quintileScores(monetary, true)

	for i := range customers {
		customers[i].RScore = rScores[i]
		customers[i].FScore = fScores[i]
		customers[i].MScore = mScores[i]
		customers[i].Segment = segmentFor(rScores[i], fScores[i], mScores[i])
	}

	sort.Slice(customers, func(i, j int) bool {
		if customers[i].Monetary != customers[j].Monetary {
			return customers[i].Monetary > customers[j].Monetary
		}
		return customers[i].CustomerID < customers[j].CustomerID
	})
	return customers
}

// quintileScores assigns each value a 1-5 score by rank position within
// the population. With fewer than five distinct values the assignment
// degrades to a ranking over what is there; equal values always share
// the lower score of the positions they span.
func quintileScores(values []float64, higherIsBetter bool) []int {
	n := len(values)
	scores := make([]int, n)
	if n == 0 {
		return scores
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	// Worst value first, so position maps directly to score.
	sort.SliceStable(idx, func(a, b int) bool {
		va, vb := values[idx[a]], values[idx[b]]
		if higherIsBetter {
			return va < vb
		}
		return va > vb
	})

	pos := 0
	for pos < n {
		run := pos
		for run+1 < n && values[idx[run+1]] == values[idx[pos]] {
			run++
		}
		score := pos*5/n + 1
		for j := pos; j <= run; j++ {
			scores[idx[j]] = score
		}
		pos = run + 1
	}
	return scores
}

// segmentFor applies the fixed precedence rules; the first match wins.
func segmentFor(r, f, m int) string {
	switch {
	case r >= 4 && f >= 4 && m >= 4:
		return SegmentChampions
	case r >= 3 && f >= 3 && m >= 3:
		return SegmentLoyal
	case r >= 3 && f <= 2 && m >= 3:
		return SegmentPotentialLoyalist
	case r >= 4 && f <= 2 && m <= 2:
		return SegmentNewCustomer
	case r <= 2 && f >= 3 && m >= 3:
		return SegmentAtRisk
	case r <= 2 && f <= 2 && m >= 4:
		return SegmentCannotLose
	case r <= 2 && f <= 2 && m <= 2:
		return SegmentLost
	default:
		return SegmentOther
	}
}

// SegmentDistribution counts customers per segment.
func SegmentDistribution(customers []CustomerRFM) map[string]int {
	dist := map[string]int{}
	for _, c := range customers {
		dist[c.Segment]++
	}
	return dist
}
