package analytics

import (
	"math"
	"sort"

	"salespulse/models"
)

// Elasticity classifications.
const (
	Elastic           = "elastic"
	ModeratelyElastic = "moderately elastic"
	Inelastic         = "inelastic"
)

// ElasticityResult is the estimated price elasticity of demand for one
// category. OK is false when the category does not have enough price
// variation to say anything, with Reason carrying the explanation.
type ElasticityResult struct {
	Category       string  `json:"category"`
	OK             bool    `json:"ok"`
	Reason         string  `json:"reason,omitempty"`
	Elasticity     float64 `json:"elasticity"`
	Classification string  `json:"classification,omitempty"`
	Transactions   int     `json:"transactions"`
	Bands          int     `json:"bands"`   // qualifying price bands
	Samples        int     `json:"samples"` // adjacent-band comparisons
}

const (
	minElasticityTransactions = 5
	minQualifyingBands        = 2
	minBandObservations       = 2
)

// PriceElasticity estimates per-category elasticity by partitioning
// transactions into fixed-width price bands, averaging quantity per
// band, and comparing adjacent bands: each pair's percentage quantity
// change over percentage price change is one sample, and the category's
// elasticity is the mean of its samples. Bands with fewer than two
// observations are dropped. Results are sorted by category name.
func PriceElasticity(records []models.SaleRecord, bandWidth float64) []ElasticityResult {
	if bandWidth <= 0 {
		bandWidth = 50
	}

	byCategory := map[string][]models.SaleRecord{}
	for _, r := range records {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}

	results := make([]ElasticityResult, 0, len(byCategory))
	for category, txns := range byCategory {
		results = append(results, categoryElasticity(category, txns, bandWidth))
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Category < results[j].Category })
	return results
}

type priceBand struct {
	index    int
	midPrice float64
	avgQty   float64
}

func categoryElasticity(category string, txns []models.SaleRecord, bandWidth float64) ElasticityResult {
	result := ElasticityResult{Category: category, Transactions: len(txns)}
	if len(txns) < minElasticityTransactions {
		result.Reason = "insufficient data: fewer than 5 transactions"
		return result
	}

	qtySum := map[int]float64{}
	obs := map[int]int{}
	for _, r := range txns {
		band := int(r.UnitPrice / bandWidth)
		qtySum[band] += float64(r.Quantity)
		obs[band]++
	}

	bands := make([]priceBand, 0, len(qtySum))
	for band, n := range obs {
		if n < minBandObservations {
			continue
		}
		bands = append(bands, priceBand{
			index:    band,
			midPrice: (float64(band) + 0.5) * bandWidth,
			avgQty:   qtySum[band] / float64(n),
		})
	}
	if len(bands) < minQualifyingBands {
		result.Reason = "insufficient price variation: fewer than 2 qualifying price bands"
		return result
	}
	sort.Slice(bands, func(i, j int) bool { return bands[i].index < bands[j].index })
	result.Bands = len(bands)

	var sum float64
	for i := 1; i < len(bands); i++ {
		prev, cur := bands[i-1], bands[i]
		if prev.midPrice == 0 || prev.avgQty == 0 {
			continue
		}
		pctPrice := (cur.midPrice - prev.midPrice) / prev.midPrice
		pctQty := (cur.avgQty - prev.avgQty) / prev.avgQty
		if pctPrice == 0 {
			continue
		}
		sum += pctQty / pctPrice
		result.Samples++
	}
	if result.Samples == 0 {
		result.Reason = "insufficient price variation: no comparable adjacent bands"
		return result
	}

	result.OK = true
	result.Elasticity = round2(sum / float64(result.Samples))
	result.Classification = classifyElasticity(result.Elasticity)
	return result
}

func classifyElasticity(e float64) string {
	switch {
	case math.Abs(e) > 1:
		return Elastic
	case math.Abs(e) > 0.5:
		return ModeratelyElastic
	default:
		return Inelastic
	}
}
