package analytics

import (
	"sort"
	"time"

	"salespulse/models"
)

// CustomerValue is the projected lifetime value of one customer.
type CustomerValue struct {
	CustomerID        string  `json:"customerId"`
	Orders            int     `json:"orders"`
	AvgOrderValue     float64 `json:"avgOrderValue"`
	LifespanMonths    float64 `json:"lifespanMonths"`
	PurchaseFrequency float64 `json:"purchaseFrequency"` // orders per month
	LifetimeValue     float64 `json:"lifetimeValue"`
}

// minLifespanMonths floors the observed lifespan so a customer with a
// single order projects to exactly their spend instead of collapsing
// to zero.
const minLifespanMonths = 3.0

// LifetimeValues estimates CLV for every customer:
//
//	avgOrderValue * purchaseFrequencyPerMonth * lifespanMonths
//
// with lifespanMonths = max(3, days between first and last order / 30).
// For a single-order customer the formula algebraically reduces to the
// order's value. Results are sorted by lifetime value, highest first.
func LifetimeValues(records []models.SaleRecord) []CustomerValue {
	type span struct {
		first, last time.Time
		orders      int
		monetary    float64
	}
	byCustomer := map[string]*span{}
	for _, r := range records {
		if r.CustomerID == "" {
			continue
		}
		s, ok := byCustomer[r.CustomerID]
		if !ok {
			s = &span{first: r.OrderDate, last: r.OrderDate}
			byCustomer[r.CustomerID] = s
		}
		s.orders++
		s.monetary += r.Total
		if r.OrderDate.Before(s.first) {
			s.first = r.OrderDate
		}
		if r.OrderDate.After(s.last) {
			s.last = r.OrderDate
		}
	}

	values := make([]CustomerValue, 0, len(byCustomer))
	for id, s := range byCustomer {
		lifespan := s.last.Sub(s.first).Hours() / 24 / 30
		if lifespan < minLifespanMonths {
			lifespan = minLifespanMonths
		}
		avgOrder := s.monetary / float64(s.orders)
		frequency := float64(s.orders) / lifespan
		values = append(values, CustomerValue{
			CustomerID:        id,
			Orders:            s.orders,
			AvgOrderValue:     round2(avgOrder),
			LifespanMonths:    round2(lifespan),
			PurchaseFrequency: round2(frequency),
			LifetimeValue:     round2(avgOrder * frequency * lifespan),
		})
	}

	sort.Slice(values, func(i, j int) bool {
		if values[i].LifetimeValue != values[j].LifetimeValue {
			return values[i].LifetimeValue > values[j].LifetimeValue
		}
		return values[i].CustomerID < values[j].CustomerID
	})
	return values
}
