package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"salespulse/models"
	"salespulse/utils"
)

// LoadSaleRecords pulls sales transactions for the analytics engine.
// This is just the input adapter: it hands back whatever the sales
// table holds in the window and leaves field-level validation to
// analytics.Clean.
func LoadSaleRecords(ctx context.Context, from, to time.Time) ([]models.SaleRecord, error) {
	query := `
		SELECT order_id, customer_id, order_date, product_name, category, quantity, unit_price, total
		FROM sales
		WHERE order_date BETWEEN $1 AND $2
		ORDER BY order_date
	`

	rows, err := GetDB().Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	records := make([]models.SaleRecord, 0)
	for rows.Next() {
		var r models.SaleRecord
		var customerID, category sql.NullString
		if err := rows.Scan(
			&r.OrderID, &customerID, &r.OrderDate, &r.Product,
			&category, &r.Quantity, &r.UnitPrice, &r.Total,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		r.CustomerID = utils.NullStringOr(customerID, "")
		r.Category = utils.NullStringOr(category, "Uncategorized")
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading sale rows: %w", err)
	}

	return records, nil
}
