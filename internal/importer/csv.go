package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/budgetai/backend/internal/models"
	"github.com/budgetai/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CSVParser parses CSV statements with a header row.
type CSVParser struct{}

// columns maps the recognized header names to their meaning. Matching is
// case-insensitive.
var columns = map[string]string{
	"date":        "date",
	"revenue":     "revenue",
	"expenses":    "expenses",
	"category":    "category",
	"description": "description",
}

// Parse reads a CSV statement and returns the historical data points it
// contains, in file order.
func (CSVParser) Parse(r io.Reader) ([]models.HistoricalDataPoint, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	index := make(map[string]int)
	for i, name := range records[0] {
		if meaning, ok := columns[strings.ToLower(strings.TrimSpace(name))]; ok {
			index[meaning] = i
		}
	}

	for _, required := range []string{"date", "revenue", "expenses"} {
		if _, ok := index[required]; !ok {
			return nil, ErrMissingColumns
		}
	}

	if len(records) == 1 {
		return nil, ErrNoRecords
	}

	points := make([]models.HistoricalDataPoint, 0, len(records)-1)
	for i, record := range records[1:] {
		point, err := parseRow(index, record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		points = append(points, point)
	}

	return points, nil
}

func parseRow(index map[string]int, record []string) (models.HistoricalDataPoint, error) {
	date, err := types.ParseDate(record[index["date"]])
	if err != nil {
		return models.HistoricalDataPoint{}, fmt.Errorf("parsing date %q: %w", record[index["date"]], err)
	}

	revenue, err := decimal.NewFromString(record[index["revenue"]])
	if err != nil {
		return models.HistoricalDataPoint{}, fmt.Errorf("parsing revenue %q: %w", record[index["revenue"]], err)
	}

	expenses, err := decimal.NewFromString(record[index["expenses"]])
	if err != nil {
		return models.HistoricalDataPoint{}, fmt.Errorf("parsing expenses %q: %w", record[index["expenses"]], err)
	}

	point := models.HistoricalDataPoint{
		Date:     date,
		Revenue:  revenue,
		Expenses: expenses,
	}

	if i, ok := index["category"]; ok && i < len(record) {
		point.Category = record[i]
	}
	if i, ok := index["description"]; ok && i < len(record) {
		point.Description = record[i]
	}

	return point, nil
}
