package analytics

import (
	"fmt"
	"sort"

	"salespulse/models"
)

// CohortPeriod is one month in a cohort's retention curve.
type CohortPeriod struct {
	Month         string  `json:"month"`
	Period        int     `json:"period"` // months since the cohort month
	ActiveCount   int     `json:"activeCount"`
	RetentionRate float64 `json:"retentionRate"` // percent of the cohort
}

// CohortRecord tracks the customers whose first purchase fell in the
// same calendar month, and how many of them came back in each month
// after.
type CohortRecord struct {
	CohortMonth string         `json:"cohortMonth"`
	CohortSize  int            `json:"cohortSize"`
	Retention   []CohortPeriod `json:"retention"`
}

// CohortRetention assigns every customer to the cohort of their first
// purchase's calendar month, then walks each subsequent month up to
// the dataset's last month counting what fraction of the cohort bought
// something. Period 0 is always 100% since the defining purchase is a
// purchase in that month.
func CohortRetention(records []models.SaleRecord) []CohortRecord {
	// Months as year*12+month ordinals so the walk is simple integer
	// arithmetic.
	firstMonth := map[string]int{}
	activity := map[int]map[string]struct{}{}
	lastMonth := 0
	for _, r := range records {
		if r.CustomerID == "" {
			continue
		}
		month := monthOrdinal(r)
		if fm, ok := firstMonth[r.CustomerID]; !ok || month < fm {
			firstMonth[r.CustomerID] = month
		}
		if activity[month] == nil {
			activity[month] = map[string]struct{}{}
		}
		activity[month][r.CustomerID] = struct{}{}
		if month > lastMonth {
			lastMonth = month
		}
	}
	if len(firstMonth) == 0 {
		return []CohortRecord{}
	}

	cohorts := map[int][]string{}
	for customer, month := range firstMonth {
		cohorts[month] = append(cohorts[month], customer)
	}

	months := make([]int, 0, len(cohorts))
	for month := range cohorts {
		months = append(months, month)
	}
	sort.Ints(months)

	result := make([]CohortRecord, 0, len(months))
	for _, cohortMonth := range months {
		members := cohorts[cohortMonth]
		record := CohortRecord{
			CohortMonth: ordinalLabel(cohortMonth),
			CohortSize:  len(members),
		}
		for month := cohortMonth; month <= lastMonth; month++ {
			active := 0
			for _, customer := range members {
				if _, ok := activity[month][customer]; ok {
					active++
				}
			}
			record.Retention = append(record.Retention, CohortPeriod{
				Month:         ordinalLabel(month),
				Period:        month - cohortMonth,
				ActiveCount:   active,
				RetentionRate: round2(float64(active) / float64(len(members)) * 100),
			})
		}
		result = append(result, record)
	}
	return result
}

func monthOrdinal(r models.SaleRecord) int {
	return r.OrderDate.Year()*12 + int(r.OrderDate.Month()) - 1
}

func ordinalLabel(ordinal int) string {
	return fmt.Sprintf("%04d-%02d", ordinal/12, ordinal%12+1)
}
