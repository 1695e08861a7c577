package models

import (
	"strings"

	"github.com/budgetai/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// HistoricalDataPoint is one observed period of financial data.
//
// The historical data set is the source of truth for every derived
// aggregate. It is immutable once imported and only ever replaced
// wholesale by a new import.
type HistoricalDataPoint struct {
	DefaultModel
	Date        types.Date      `json:"date" example:"2023-01-15"`
	Revenue     decimal.Decimal `json:"revenue" gorm:"type:DECIMAL(20,8)" example:"25000"`
	Expenses    decimal.Decimal `json:"expenses" gorm:"type:DECIMAL(20,8)" example:"15000"`
	Category    string          `json:"category,omitempty" example:"Consulting"`
	Description string          `json:"description,omitempty" example:"Project Alpha"`
}

func (h *HistoricalDataPoint) BeforeSave(_ *gorm.DB) error {
	h.Category = strings.TrimSpace(h.Category)
	h.Description = strings.TrimSpace(h.Description)

	return nil
}

// HistoricalData returns the full historical data set in period order.
func HistoricalData(db *gorm.DB) ([]HistoricalDataPoint, error) {
	var points []HistoricalDataPoint
	err := db.Order("date ASC").Find(&points).Error
	return points, err
}

// ReplaceHistoricalData discards the current data set and stores the new one.
// An import with no records is rejected.
func ReplaceHistoricalData(db *gorm.DB, points []HistoricalDataPoint) error {
	if len(points) == 0 {
		return ErrHistoricalDataEmpty
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&HistoricalDataPoint{}).Error
		if err != nil {
			return err
		}

		return tx.Create(&points).Error
	})
}

// HistoricalSums returns the revenue and expense sums over a data set.
func HistoricalSums(points []HistoricalDataPoint) (revenue, expenses decimal.Decimal) {
	for _, p := range points {
		revenue = revenue.Add(p.Revenue)
		expenses = expenses.Add(p.Expenses)
	}

	return
}
