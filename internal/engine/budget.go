package engine

import (
	"context"

	"github.com/budgetai/backend/internal/models"
	"github.com/budgetai/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Baselines used when a draft budget is generated without any history.
var (
	defaultAvgRevenue  = decimal.NewFromInt(35000)
	defaultAvgExpenses = decimal.NewFromInt(18000)
)

// EmptyBudget returns a three-item starter budget for the current month.
func (e *Engine) EmptyBudget() models.Budget {
	budget := models.Budget{
		Name:   "Untitled Budget",
		Period: types.MonthOf(e.now()).Label(),
		Items: []models.BudgetItem{
			{Category: "Revenue Example", Kind: models.ItemKindRevenue, PlannedAmount: decimal.NewFromInt(50000)},
			{Category: "Marketing Expenses", Kind: models.ItemKindExpense, PlannedAmount: decimal.NewFromInt(5000)},
			{Category: "Operational Costs", Kind: models.ItemKindExpense, PlannedAmount: decimal.NewFromInt(10000)},
		},
	}

	budget.Recompute()
	return budget
}

// draftCategory describes one line of the generated draft budget: where its
// planned amount comes from and what it falls back to.
type draftCategory struct {
	category         string
	kind             models.ItemKind
	forecastCategory string // matched against expense forecast point categories
	forecastIndex    int    // index into the revenue forecast points, -1 for expense lines
	share            decimal.Decimal
}

var draftCategories = []draftCategory{
	{"Sales Revenue", models.ItemKindRevenue, "", 0, decimal.NewFromFloat(0.7)},
	{"Service Revenue", models.ItemKindRevenue, "", 1, decimal.NewFromFloat(0.3)},
	{"Marketing Expenses", models.ItemKindExpense, "Marketing", -1, decimal.NewFromFloat(0.2)},
	{"Operational Costs", models.ItemKindExpense, "Operations", -1, decimal.NewFromFloat(0.3)},
	{"Salaries", models.ItemKindExpense, "Salaries", -1, decimal.NewFromFloat(0.4)},
	{"Utilities", models.ItemKindExpense, "Utilities", -1, decimal.NewFromFloat(0.1)},
}

// DraftBudget derives a six-category budget for the upcoming month.
//
// Planned amounts come from, in priority order: the corresponding forecast
// point, a fixed share of the historical average, or a hardcoded baseline.
// Callers guard against generating a draft with neither history nor
// forecasts available.
func (e *Engine) DraftBudget(ctx context.Context, history []models.HistoricalDataPoint, revenueForecast, expenseForecast *models.Forecast) (models.Budget, error) {
	if err := e.simulate(ctx, e.latency); err != nil {
		return models.Budget{}, err
	}

	avgRevenue, avgExpenses := defaultAvgRevenue, defaultAvgExpenses
	if len(history) > 0 {
		count := decimal.NewFromInt(int64(len(history)))
		revenue, expenses := models.HistoricalSums(history)
		avgRevenue = revenue.Div(count)
		avgExpenses = expenses.Div(count)
	}

	items := make([]models.BudgetItem, 0, len(draftCategories))
	for _, dc := range draftCategories {
		var planned decimal.Decimal

		if dc.kind == models.ItemKindRevenue {
			if point := forecastPointAt(revenueForecast, dc.forecastIndex); point != nil {
				planned = point.Value
			} else {
				planned = avgRevenue.Mul(dc.share)
			}
		} else {
			if point := forecastPointFor(expenseForecast, dc.forecastCategory); point != nil {
				planned = point.Value
			} else {
				planned = avgExpenses.Mul(dc.share)
			}
		}

		items = append(items, models.BudgetItem{
			Category:      dc.category,
			Kind:          dc.kind,
			PlannedAmount: planned,
		})
	}

	period := types.MonthOf(e.now().AddDate(0, 0, 30)).Label()
	budget := models.Budget{
		Name:   "Draft Budget - " + period,
		Period: period,
		Items:  items,
	}

	budget.Recompute()
	return budget, nil
}

// forecastPointAt returns the forecast point at the given index, nil when
// the forecast is absent or too short.
func forecastPointAt(forecast *models.Forecast, index int) *models.ForecastPoint {
	if forecast == nil || index < 0 || index >= len(forecast.Points) {
		return nil
	}

	return &forecast.Points[index]
}

// forecastPointFor returns the first forecast point with the given
// category label, nil when the forecast is absent or has no such point.
func forecastPointFor(forecast *models.Forecast, category string) *models.ForecastPoint {
	if forecast == nil {
		return nil
	}

	for i := range forecast.Points {
		if forecast.Points[i].Category == category {
			return &forecast.Points[i]
		}
	}

	return nil
}
