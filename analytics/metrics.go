package analytics

import (
	"sort"

	"salespulse/models"
)

// ProductRanking is one row of a top-N product table.
type ProductRanking struct {
	Product  string  `json:"product"`
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
	Orders   int     `json:"orders"`
}

// CategoryBreakdown summarizes one category's share of the business.
type CategoryBreakdown struct {
	Category        string  `json:"category"`
	Revenue         float64 `json:"revenue"`
	RevenueShare    float64 `json:"revenueShare"` // percent of total revenue
	Quantity        int     `json:"quantity"`
	Orders          int     `json:"orders"`
	UniqueCustomers int     `json:"uniqueCustomers"`
	EstimatedMargin float64 `json:"estimatedMargin"` // estimated profit in dollars
}

// Margin rates by category, agreed with finance. Categories we have not
// priced fall back to defaultMarginRate.
var categoryMarginRates = map[string]float64{
	"Electronics":   0.22,
	"Clothing":      0.48,
	"Home & Garden": 0.38,
	"Books":         0.30,
	"Sports":        0.35,
	"Beauty":        0.55,
}

const defaultMarginRate = 0.30

// TotalRevenue sums revenue across all records.
func TotalRevenue(records []models.SaleRecord) float64 {
	var total float64
	for _, r := range records {
		total += r.Total
	}
	return round2(total)
}

// AverageOrderValue is total revenue divided by the number of orders.
// An empty set yields 0.
func AverageOrderValue(records []models.SaleRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	return round2(TotalRevenue(records) / float64(len(records)))
}

// TopProducts ranks products by revenue, descending, ties broken by
// product name so the order is stable.
func TopProducts(records []models.SaleRecord, n int) []ProductRanking {
	buckets := AggregateBy(records, ByProduct)

	ranked := make([]ProductRanking, 0, len(buckets))
	for _, b := range buckets {
		ranked = append(ranked, ProductRanking{
			Product:  b.Key,
			Revenue:  round2(b.Revenue),
			Quantity: b.Quantity,
			Orders:   b.Orders,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].Product < ranked[j].Product
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// CategoryPerformance breaks revenue down by category, including each
// category's share of the total and an estimated profit based on the
// per-category margin rates.
func CategoryPerformance(records []models.SaleRecord) []CategoryBreakdown {
	buckets := AggregateBy(records, ByCategory)
	total := TotalRevenue(records)

	breakdown := make([]CategoryBreakdown, 0, len(buckets))
	for _, b := range buckets {
		rate, ok := categoryMarginRates[b.Key]
		if !ok {
			rate = defaultMarginRate
		}
		share := 0.0
		if total > 0 {
			share = round2(b.Revenue / total * 100)
		}
		breakdown = append(breakdown, CategoryBreakdown{
			Category:        b.Key,
			Revenue:         round2(b.Revenue),
			RevenueShare:    share,
			Quantity:        b.Quantity,
			Orders:          b.Orders,
			UniqueCustomers: b.UniqueCustomers(),
			EstimatedMargin: round2(b.Revenue * rate),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Revenue != breakdown[j].Revenue {
			return breakdown[i].Revenue > breakdown[j].Revenue
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}
