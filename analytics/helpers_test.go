package analytics

import (
	"math"
	"time"

	"salespulse/models"
)

// testRef is the reference clock used across the analytics tests; all
// fixture dates sit safely before it.
var testRef = time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

// sale builds a consistent fixture record (total = quantity * price).
func sale(customer, product, category, date string, qty int, price float64) models.SaleRecord {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("bad fixture date: " + date)
	}
	return models.SaleRecord{
		OrderID:    customer + "-" + date + "-" + product,
		CustomerID: customer,
		OrderDate:  t,
		Product:    product,
		Category:   category,
		Quantity:   qty,
		UnitPrice:  price,
		Total:      math.Round(float64(qty)*price*100) / 100,
	}
}
