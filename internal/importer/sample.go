package importer

import (
	"github.com/budgetai/backend/internal/models"
	"github.com/budgetai/backend/internal/types"
	"github.com/shopspring/decimal"
)

// SampleData returns the built-in 12 month sample data set, used when no
// file is uploaded. The revenue sum over the set is 366000.
func SampleData() []models.HistoricalDataPoint {
	sample := []struct {
		date        string
		revenue     int64
		expenses    int64
		category    string
		description string
	}{
		{"2023-01-15", 25000, 15000, "Consulting", "Project Alpha"},
		{"2023-02-15", 28000, 16000, "Software Sales", "New Client Deals"},
		{"2023-03-15", 22000, 14000, "Maintenance", "Recurring Support"},
		{"2023-04-15", 30000, 17000, "Consulting", "Project Beta"},
		{"2023-05-15", 32000, 18000, "Software Sales", "Upsells"},
		{"2023-06-15", 27000, 15500, "Maintenance", "Quarterly Review"},
		{"2023-07-15", 35000, 19000, "Consulting", "New Retainer"},
		{"2023-08-15", 33000, 18500, "Software Sales", "Existing Clients Growth"},
		{"2023-09-15", 29000, 16500, "Maintenance", "Annual Contracts"},
		{"2023-10-15", 38000, 20000, "Consulting", "Project Gamma"},
		{"2023-11-15", 36000, 19500, "Software Sales", "Holiday Deals"},
		{"2023-12-15", 31000, 17500, "Maintenance", "Year-End Support"},
	}

	points := make([]models.HistoricalDataPoint, 0, len(sample))
	for _, s := range sample {
		date, _ := types.ParseDate(s.date)
		points = append(points, models.HistoricalDataPoint{
			Date:        date,
			Revenue:     decimal.NewFromInt(s.revenue),
			Expenses:    decimal.NewFromInt(s.expenses),
			Category:    s.category,
			Description: s.description,
		})
	}

	return points
}
