package models

import (
	"github.com/budgetai/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ForecastKind is the metric a forecast projects.
type ForecastKind string

const (
	ForecastRevenue  ForecastKind = "revenue"
	ForecastExpenses ForecastKind = "expenses"
	ForecastCashflow ForecastKind = "cashflow"
)

var forecastKinds = []ForecastKind{ForecastRevenue, ForecastExpenses, ForecastCashflow}

// ParseForecastKind parses a forecast kind from its wire representation.
func ParseForecastKind(s string) (ForecastKind, error) {
	if slices.Contains(forecastKinds, ForecastKind(s)) {
		return ForecastKind(s), nil
	}

	return "", ErrInvalidForecastKind
}

// ForecastPoint is one projected (date, value, confidence) tuple.
//
// The confidence values are absolute deviations from the value, not
// bounds: consumers add and subtract them to form a display band.
type ForecastPoint struct {
	ID            uint             `json:"-" gorm:"primaryKey"`
	ForecastID    uuid.UUID        `json:"-"`
	Date          types.Date       `json:"date" example:"2024-01-15"`
	Value         decimal.Decimal  `json:"value" gorm:"type:DECIMAL(20,8)" example:"31000"`
	ConfidenceMin *decimal.Decimal `json:"confidenceMin,omitempty" gorm:"type:DECIMAL(20,8)" example:"3100"`
	ConfidenceMax *decimal.Decimal `json:"confidenceMax,omitempty" gorm:"type:DECIMAL(20,8)" example:"3100"`
	Category      string           `json:"category,omitempty" example:"Marketing"`
}

// Forecast is a 12 month projection for one metric. Forecasts are produced
// fresh on each refresh and replaced wholesale, never mutated.
type Forecast struct {
	DefaultModel
	Kind    ForecastKind    `json:"type" gorm:"uniqueIndex" example:"revenue"`
	Summary string          `json:"summary,omitempty"`
	Points  []ForecastPoint `json:"points" gorm:"constraint:OnDelete:CASCADE"`
}

// Forecasts returns all current forecasts with their points in projection
// order.
func Forecasts(db *gorm.DB) ([]Forecast, error) {
	var forecasts []Forecast
	err := db.Preload("Points", func(db *gorm.DB) *gorm.DB {
		return db.Order("forecast_points.id ASC")
	}).Order("kind ASC").Find(&forecasts).Error

	return forecasts, err
}

// ForecastByKind returns the current forecast for one metric.
func ForecastByKind(db *gorm.DB, kind ForecastKind) (Forecast, error) {
	var forecast Forecast
	err := db.Preload("Points", func(db *gorm.DB) *gorm.DB {
		return db.Order("forecast_points.id ASC")
	}).Where(&Forecast{Kind: kind}).First(&forecast).Error

	return forecast, err
}

// ReplaceForecasts atomically replaces all stored forecasts. A failed
// replacement leaves the previous forecasts untouched.
func ReplaceForecasts(db *gorm.DB, forecasts []Forecast) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&ForecastPoint{}).Error
		if err != nil {
			return err
		}

		err = tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&Forecast{}).Error
		if err != nil {
			return err
		}

		if len(forecasts) == 0 {
			return nil
		}

		return tx.Create(&forecasts).Error
	})
}
