package analytics

import (
	"testing"

	"salespulse/models"

	"github.com/stretchr/testify/assert"
)

func TestDetectAlertsCriticalDecline(t *testing.T) {
	records := []models.SaleRecord{
		sale("c1", "Laptop", "Electronics", "2025-05-10", 4, 250), // $1000
		sale("c2", "Laptop", "Electronics", "2025-06-12", 2, 250), // $500: -50%
	}

	alerts := DetectAlerts(records, DefaultAlertThresholds)

	assert.Len(t, alerts, 1)
	assert.Equal(t, SeverityCritical, alerts[0].Severity)
	assert.Equal(t, AlertDecline, alerts[0].Type)
	assert.InDelta(t, 50, alerts[0].DeclinePct, 0.001)
}

func TestDetectAlertsWarningDecline(t *testing.T) {
	records := []models.SaleRecord{
		sale("c1", "Jeans", "Clothing", "2025-05-10", 5, 100), // $500
		sale("c2", "Jeans", "Clothing", "2025-06-12", 4, 100), // $400: -20%
	}

	alerts := DetectAlerts(records, DefaultAlertThresholds)

	assert.Len(t, alerts, 1)
	assert.Equal(t, SeverityWarning, alerts[0].Severity)
}

func TestDetectAlertsNoAlertForSmallDecline(t *testing.T) {
	records := []models.SaleRecord{
		sale("c1", "Jeans", "Clothing", "2025-05-10", 10, 100),
		sale("c2", "Jeans", "Clothing", "2025-06-12", 9, 100), // -10%
	}

	alerts := DetectAlerts(records, DefaultAlertThresholds)
	if len(alerts) != 0 {
		t.Fatalf("expected no alerts, got %+v", alerts)
	}
}

func TestDetectAlertsZeroSalesAfterPriorSales(t *testing.T) {
	records := []models.SaleRecord{
		// Camera sold in May but not June; Lamp keeps the dataset's
		// latest month at June.
		sale("c1", "Camera", "Electronics", "2025-05-10", 2, 300),
		sale("c2", "Lamp", "Home & Garden", "2025-05-11", 3, 40),
		sale("c3", "Lamp", "Home & Garden", "2025-06-15", 3, 40),
	}

	alerts := DetectAlerts(records, DefaultAlertThresholds)

	var zero *Alert
	for i := range alerts {
		if alerts[i].Type == AlertZeroSales {
			zero = &alerts[i]
		}
	}
	if zero == nil {
		t.Fatalf("expected a zero-sales alert, got %+v", alerts)
	}
	assert.Equal(t, "Camera", zero.Product)
	assert.Equal(t, SeverityCritical, zero.Severity)
	assert.Equal(t, 0.0, zero.LastMonth)
}

func TestDetectAlertsLowVolumeNotice(t *testing.T) {
	records := []models.SaleRecord{
		sale("c1", "Curtains", "Home & Garden", "2025-05-10", 1, 25),
		sale("c2", "Curtains", "Home & Garden", "2025-06-10", 1, 25),
	}

	alerts := DetectAlerts(records, DefaultAlertThresholds)

	assert.Len(t, alerts, 1)
	assert.Equal(t, SeverityInfo, alerts[0].Severity)
	assert.Equal(t, AlertLowVolume, alerts[0].Type)
	assert.InDelta(t, 1.0, alerts[0].AvgMonthlyUnits, 0.001)
}

func TestDetectAlertsSortedBySeverity(t *testing.T) {
	records := []models.SaleRecord{
		// Critical decliner.
		sale("c1", "Laptop", "Electronics", "2025-05-01", 4, 250),
		sale("c2", "Laptop", "Electronics", "2025-06-01", 2, 250),
		// Warning decliner.
		sale("c3", "Jeans", "Clothing", "2025-05-02", 5, 100),
		sale("c4", "Jeans", "Clothing", "2025-06-02", 4, 100),
		// Low mover.
		sale("c5", "Curtains", "Home & Garden", "2025-05-03", 1, 25),
		sale("c6", "Curtains", "Home & Garden", "2025-06-03", 1, 25),
	}

	alerts := DetectAlerts(records, DefaultAlertThresholds)

	if len(alerts) < 3 {
		t.Fatalf("expected at least 3 alerts, got %d", len(alerts))
	}
	for i := 1; i < len(alerts); i++ {
		if severityRank[alerts[i-1].Severity] > severityRank[alerts[i].Severity] {
			t.Fatalf("alerts out of severity order: %s before %s",
				alerts[i-1].Severity, alerts[i].Severity)
		}
	}
}

func TestDetectAlertsEmptyInput(t *testing.T) {
	alerts := DetectAlerts(nil, DefaultAlertThresholds)
	if len(alerts) != 0 {
		t.Fatalf("expected empty alert list, got %+v", alerts)
	}
}
