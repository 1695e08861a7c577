package engine

import (
	"context"

	"github.com/budgetai/backend/internal/models"
	"github.com/budgetai/backend/internal/types"
	"github.com/shopspring/decimal"
)

// forecastHorizon is the number of forward-looking points per forecast.
const forecastHorizon = 12

// Baselines used when no historical data exists.
var (
	defaultLastRevenue  = decimal.NewFromInt(30000)
	defaultLastExpenses = decimal.NewFromInt(15000)
)

// expenseCategories is the fixed label set expense points cycle through to
// support category breakdowns.
var expenseCategories = []string{"Operations", "Marketing", "Salaries", "Utilities", "Software"}

// The summaries are static templates, not derived from the data. A real
// forecaster replaces them together with the point generation.
const (
	revenueSummary  = "Revenue is projected to show moderate growth over the next year, with seasonal peaks expected in Q2 and Q4."
	expensesSummary = "Expenses are expected to remain relatively stable, with slight increases in operational costs during peak business periods."
	cashflowSummary = "Cash flow is projected to be positive, with potential tightening in mid-year before improving towards year-end."
)

// anchor returns the date forecasts step forward from: the last historical
// date, or today when there is no history.
func (e *Engine) anchor(history []models.HistoricalDataPoint) types.Date {
	if len(history) == 0 {
		return types.DateOf(e.now())
	}

	return history[len(history)-1].Date
}

// ForecastRevenue projects monthly revenue for the next 12 months.
//
// Each point fluctuates around the last observed revenue with a bounded,
// slightly upward-biased random multiplier. Values are floored at zero and
// rounded to whole currency units; the confidence deviations are 10% of
// the fluctuated base.
func (e *Engine) ForecastRevenue(ctx context.Context, history []models.HistoricalDataPoint) (models.Forecast, error) {
	if err := e.simulate(ctx, e.latency); err != nil {
		return models.Forecast{}, err
	}

	last := defaultLastRevenue
	if len(history) > 0 {
		last = history[len(history)-1].Revenue
	}

	anchor := e.anchor(history)
	points := make([]models.ForecastPoint, 0, forecastHorizon)
	for i := 0; i < forecastHorizon; i++ {
		base := last.Mul(decimal.NewFromFloat(1 + (e.float64()-0.4)*0.1))

		value := base.Round(0)
		if value.IsNegative() {
			value = decimal.Zero
		}

		deviation := base.Mul(decimal.NewFromFloat(0.1)).Round(0)
		points = append(points, models.ForecastPoint{
			Date:          anchor.AddMonths(i + 1),
			Value:         value,
			ConfidenceMin: &deviation,
			ConfidenceMax: &deviation,
		})
	}

	return models.Forecast{
		Kind:    models.ForecastRevenue,
		Summary: revenueSummary,
		Points:  points,
	}, nil
}

// ForecastExpenses projects monthly expenses for the next 12 months.
//
// The fluctuation is smaller than for revenue (±2.5%, slightly upward
// biased) with 5% confidence deviations. Points cycle through the fixed
// expense category labels to support category breakdowns.
func (e *Engine) ForecastExpenses(ctx context.Context, history []models.HistoricalDataPoint) (models.Forecast, error) {
	if err := e.simulate(ctx, e.latency); err != nil {
		return models.Forecast{}, err
	}

	last := defaultLastExpenses
	if len(history) > 0 {
		last = history[len(history)-1].Expenses
	}

	anchor := e.anchor(history)
	points := make([]models.ForecastPoint, 0, forecastHorizon)
	for i := 0; i < forecastHorizon; i++ {
		base := last.Mul(decimal.NewFromFloat(1 + (e.float64()-0.45)*0.05))

		value := base.Round(0)
		if value.IsNegative() {
			value = decimal.Zero
		}

		deviation := base.Mul(decimal.NewFromFloat(0.05)).Round(0)
		points = append(points, models.ForecastPoint{
			Date:          anchor.AddMonths(i + 1),
			Value:         value,
			ConfidenceMin: &deviation,
			ConfidenceMax: &deviation,
			Category:      expenseCategories[i%len(expenseCategories)],
		})
	}

	return models.Forecast{
		Kind:    models.ForecastExpenses,
		Summary: expensesSummary,
		Points:  points,
	}, nil
}

// ForecastCashflow projects monthly cashflow for the next 12 months.
//
// Cashflow is a single running value starting at the last observed
// revenue minus expenses. Each point adds a uniform random delta to its
// predecessor; the value is not floored and can go negative. Cashflow
// points carry no confidence band.
func (e *Engine) ForecastCashflow(ctx context.Context, history []models.HistoricalDataPoint) (models.Forecast, error) {
	if err := e.simulate(ctx, e.latency); err != nil {
		return models.Forecast{}, err
	}

	revenue, expenses := defaultLastRevenue, defaultLastExpenses
	if len(history) > 0 {
		revenue = history[len(history)-1].Revenue
		expenses = history[len(history)-1].Expenses
	}

	anchor := e.anchor(history)
	running := revenue.Sub(expenses)
	points := make([]models.ForecastPoint, 0, forecastHorizon)
	for i := 0; i < forecastHorizon; i++ {
		running = running.Add(decimal.NewFromFloat(e.float64()*10000 - 5000))

		points = append(points, models.ForecastPoint{
			Date:  anchor.AddMonths(i + 1),
			Value: running.Round(0),
		})
	}

	return models.Forecast{
		Kind:    models.ForecastCashflow,
		Summary: cashflowSummary,
		Points:  points,
	}, nil
}
