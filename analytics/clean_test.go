package analytics

import (
	"testing"
	"time"

	"salespulse/models"

	"github.com/stretchr/testify/assert"
)

func TestCleanRejectsInvalidRecords(t *testing.T) {
	bad := []models.SaleRecord{
		{CustomerID: "c1", OrderDate: testRef.AddDate(0, -1, 0), Quantity: 0, UnitPrice: 10, Total: 0},
		{CustomerID: "c2", OrderDate: testRef.AddDate(0, -1, 0), Quantity: -3, UnitPrice: 10, Total: -30},
		{CustomerID: "c3", OrderDate: testRef.AddDate(0, -1, 0), Quantity: 1, UnitPrice: 0, Total: 0},
		{CustomerID: "c4", OrderDate: testRef.AddDate(0, 1, 0), Quantity: 1, UnitPrice: 10, Total: 10},  // future
		{CustomerID: "c5", OrderDate: time.Time{}, Quantity: 1, UnitPrice: 10, Total: 10},               // zero date
	}
	good := sale("c6", "Laptop", "Electronics", "2025-05-10", 2, 499.99)

	valid, summary := Clean(append(bad, good), testRef)

	assert.Len(t, valid, 1)
	assert.Equal(t, 6, summary.Initial)
	assert.Equal(t, 1, summary.Final)
	assert.Equal(t, 5, summary.Rejected)
	assert.Equal(t, 2, summary.RejectedByReason[RejectBadQuantity])
	assert.Equal(t, 1, summary.RejectedByReason[RejectBadPrice])
	assert.Equal(t, 2, summary.RejectedByReason[RejectBadDate])
}

func TestCleanRecomputesInconsistentTotals(t *testing.T) {
	r := sale("c1", "Lamp", "Home & Garden", "2025-04-02", 3, 19.99)
	r.Total = 100 // drifted

	valid, summary := Clean([]models.SaleRecord{r}, testRef)

	assert.Len(t, valid, 1)
	assert.Equal(t, 1, summary.TotalsRecomputed)
	assert.InDelta(t, 59.97, valid[0].Total, 0.001)
}

func TestCleanKeepsTotalsWithinACent(t *testing.T) {
	r := sale("c1", "Lamp", "Home & Garden", "2025-04-02", 3, 19.99)
	r.Total += 0.01

	valid, summary := Clean([]models.SaleRecord{r}, testRef)

	assert.Equal(t, 0, summary.TotalsRecomputed)
	assert.InDelta(t, 59.98, valid[0].Total, 0.001)
}

func TestCleanRejectsDuplicateOrders(t *testing.T) {
	first := sale("c1", "Laptop", "Electronics", "2025-05-10", 1, 499.99)
	dup := first
	dup.Quantity = 3 // same order resubmitted with drifted fields

	valid, summary := Clean([]models.SaleRecord{first, dup}, testRef)

	assert.Len(t, valid, 1)
	assert.Equal(t, 1, valid[0].Quantity)
	assert.Equal(t, 1, summary.RejectedByReason[RejectDuplicate])
	assert.Equal(t, 1, summary.Rejected)
}

func TestTrimOutliersDropsExtremeTotals(t *testing.T) {
	records := []models.SaleRecord{
		sale("c1", "Book", "Books", "2025-05-01", 1, 10),
		sale("c2", "Book", "Books", "2025-05-02", 1, 11),
		sale("c3", "Book", "Books", "2025-05-03", 1, 12),
		sale("c4", "Book", "Books", "2025-05-04", 1, 13),
		sale("c5", "TV", "Electronics", "2025-05-05", 1, 1000),
	}

	// Totals 10..13 and 1000: Q1=11, Q3=13, fences [8, 16].
	kept, trimmed := TrimOutliers(records)

	assert.Equal(t, 1, trimmed)
	assert.Len(t, kept, 4)
	for _, r := range kept {
		assert.Less(t, r.Total, 16.0)
	}
}

func TestTrimOutliersLeavesSmallAndUniformSetsAlone(t *testing.T) {
	small := []models.SaleRecord{
		sale("c1", "Book", "Books", "2025-05-01", 1, 10),
		sale("c2", "TV", "Electronics", "2025-05-02", 1, 5000),
	}
	kept, trimmed := TrimOutliers(small)
	assert.Equal(t, 0, trimmed)
	assert.Len(t, kept, 2)

	uniform := []models.SaleRecord{
		sale("c1", "Book", "Books", "2025-05-01", 1, 20),
		sale("c2", "Book", "Books", "2025-05-02", 1, 20),
		sale("c3", "Book", "Books", "2025-05-03", 1, 20),
		sale("c4", "Book", "Books", "2025-05-04", 1, 20),
	}
	kept, trimmed = TrimOutliers(uniform)
	assert.Equal(t, 0, trimmed)
	assert.Len(t, kept, 4)
}

func TestCleanedOutputExcludesRejectedFromAggregates(t *testing.T) {
	rejected := sale("c9", "Widget", "Sports", "2025-05-01", 1, 25)
	rejected.Quantity = -1
	records := []models.SaleRecord{
		rejected,
		sale("c1", "Ball", "Sports", "2025-05-02", 2, 15),
	}

	valid, _ := Clean(records, testRef)
	buckets := AggregateBy(valid, ByCategory)

	assert.Len(t, buckets, 1)
	assert.InDelta(t, 30, buckets["Sports"].Revenue, 0.001)
	assert.Equal(t, 1, buckets["Sports"].Orders)
}

func TestCleanEmptyInput(t *testing.T) {
	valid, summary := Clean(nil, testRef)
	if len(valid) != 0 {
		t.Fatalf("expected no records, got %d", len(valid))
	}
	if summary.Initial != 0 || summary.Final != 0 || summary.Rejected != 0 {
		t.Fatalf("expected zeroed summary, got %+v", summary)
	}
}

func TestReferenceTime(t *testing.T) {
	records := []models.SaleRecord{
		sale("c1", "A", "Books", "2025-01-15", 1, 10),
		sale("c1", "A", "Books", "2025-03-20", 1, 10),
		sale("c2", "A", "Books", "2025-02-01", 1, 10),
	}
	ref := ReferenceTime(records)
	assert.Equal(t, "2025-03-20", ref.Format("2006-01-02"))
}
