package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	// ErrNoActiveBudget is returned when an operation needs an active budget
	// and none exists.
	ErrNoActiveBudget = errors.New("there is no active budget. Create or import a budget first")

	// ErrNoBudgetBasis is returned when a draft budget is requested without
	// historical data or forecasts to derive it from.
	ErrNoBudgetBasis = errors.New("a draft budget needs historical data or forecasts to be generated from. Import data first")

	// ErrHistoricalDataEmpty is returned when an import contains no records.
	ErrHistoricalDataEmpty = errors.New("the imported data set must contain at least one record")

	ErrResultScenarioMissing = errors.New("a scenario result must reference an existing scenario")
	ErrInvalidForecastKind   = errors.New("the forecast kind must be one of 'revenue', 'expenses' or 'cashflow'")
)
