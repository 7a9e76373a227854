package analytics

import (
	"sync"
	"time"

	"salespulse/models"
)

// Bucket accumulates the contribution of every record that maps to one
// value of a grouping dimension. Accumulation is a plain sum per field,
// so buckets built from disjoint shards of the input can be merged by
// addition.
type Bucket struct {
	Key      string  `json:"key"`
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
	Orders   int     `json:"orders"`

	customers map[string]struct{}
}

func newBucket(key string) *Bucket {
	return &Bucket{Key: key, customers: map[string]struct{}{}}
}

func (b *Bucket) add(r models.SaleRecord) {
	b.Revenue += r.Total
	b.Quantity += r.Quantity
	b.Orders++
	if r.CustomerID != "" {
		b.customers[r.CustomerID] = struct{}{}
	}
}

func (b *Bucket) merge(other *Bucket) {
	b.Revenue += other.Revenue
	b.Quantity += other.Quantity
	b.Orders += other.Orders
	for c := range other.customers {
		b.customers[c] = struct{}{}
	}
}

// UniqueCustomers reports how many distinct customer keys contributed
// to the bucket.
func (b *Bucket) UniqueCustomers() int {
	return len(b.customers)
}

// KeyFunc projects a record onto a grouping dimension (category,
// product, calendar month, customer, ...).
type KeyFunc func(models.SaleRecord) string

// AggregateBy folds the records into one bucket per key. Each record
// contributes to exactly one bucket, exactly once.
func AggregateBy(records []models.SaleRecord, key KeyFunc) map[string]*Bucket {
	buckets := map[string]*Bucket{}
	for _, r := range records {
		k := key(r)
		b, ok := buckets[k]
		if !ok {
			b = newBucket(k)
			buckets[k] = b
		}
		b.add(r)
	}
	return buckets
}

// AggregateParallel shards the input across workers, accumulates
// partial buckets independently and merges them by summation. The merge
// is the only synchronization point, which is safe because per-bucket
// accumulation is associative and commutative. Results are identical to
// AggregateBy for any worker count.
func AggregateParallel(records []models.SaleRecord, key KeyFunc, workers int) map[string]*Bucket {
	if workers <= 1 || len(records) < workers {
		return AggregateBy(records, key)
	}

	partials := make([]map[string]*Bucket, workers)
	chunk := (len(records) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(records) {
			hi = len(records)
		}
		if lo >= hi {
			partials[w] = map[string]*Bucket{}
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			partials[w] = AggregateBy(records[lo:hi], key)
		}(w, lo, hi)
	}
	wg.Wait()

	merged := partials[0]
	for _, part := range partials[1:] {
		for k, b := range part {
			if existing, ok := merged[k]; ok {
				existing.merge(b)
			} else {
				merged[k] = b
			}
		}
	}
	return merged
}

// MonthKey buckets a timestamp into its calendar month, e.g. "2025-07".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// Common grouping dimensions.
func ByCategory(r models.SaleRecord) string { return r.Category }
func ByProduct(r models.SaleRecord) string  { return r.Product }
func ByCustomer(r models.SaleRecord) string { return r.CustomerID }
func ByMonth(r models.SaleRecord) string    { return MonthKey(r.OrderDate) }
