// Package importer converts uploaded financial statements into historical
// data points.
//
// The expected input is a CSV statement with a header row and the columns
// Date, Revenue, Expenses and optionally Category and Description. The
// built-in sample data set can be loaded instead of a file to explore the
// dashboard without real data.
package importer

import (
	"errors"
	"io"

	"github.com/budgetai/backend/internal/models"
)

// Parser converts an uploaded statement into historical data points.
type Parser interface {
	Parse(r io.Reader) ([]models.HistoricalDataPoint, error)
}

var (
	ErrNoRecords      = errors.New("the file does not contain any records")
	ErrMissingColumns = errors.New("the file must contain the columns 'Date', 'Revenue' and 'Expenses'")
)
