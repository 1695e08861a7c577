package engine

import (
	"context"
	"fmt"

	"github.com/budgetai/backend/internal/models"
	"github.com/shopspring/decimal"
)

// significantChange is the narrative used when the percentage change is
// not finite, i.e. when the base cashflow is zero.
const significantChange = "a significant amount"

// AnalyzeScenario projects the outcome of applying the scenario params to
// the budget. It is pure: the budget is not modified, callers append the
// result to their own history.
//
// The percentage change of the cashflow is undefined when the base
// cashflow is zero; the narrative then reads "a significant amount"
// instead of a numeric percentage.
func (e *Engine) AnalyzeScenario(ctx context.Context, budget models.Budget, params models.ScenarioParams) (models.ScenarioResult, error) {
	if err := e.simulate(ctx, e.latency); err != nil {
		return models.ScenarioResult{}, err
	}

	baseRevenue := budget.RevenueSum()
	baseExpenses := budget.ExpenseSum()

	projectedRevenue := baseRevenue
	projectedExpenses := baseExpenses

	if params.RevenueChangePercent != nil {
		projectedRevenue = projectedRevenue.Mul(decimal.NewFromInt(1).Add(*params.RevenueChangePercent))
	}
	if params.ExpenseChangePercent != nil {
		projectedExpenses = projectedExpenses.Mul(decimal.NewFromInt(1).Add(*params.ExpenseChangePercent))
	}
	if params.OneTimeExpense != nil {
		projectedExpenses = projectedExpenses.Add(params.OneTimeExpense.Amount)
	}
	if params.OneTimeRevenue != nil {
		projectedRevenue = projectedRevenue.Add(params.OneTimeRevenue.Amount)
	}

	projectedCashflow := projectedRevenue.Sub(projectedExpenses)
	baseCashflow := baseRevenue.Sub(baseExpenses)

	change := significantChange
	if !baseCashflow.IsZero() {
		percentage, _ := projectedCashflow.Div(baseCashflow).Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100)).Float64()
		change = fmt.Sprintf("%.1f%%", percentage)
	}

	projectedRevenue = projectedRevenue.Round(0)
	projectedExpenses = projectedExpenses.Round(0)
	projectedCashflow = projectedCashflow.Round(0)

	summary := fmt.Sprintf(
		"Scenario projects revenue of %s and expenses of %s, resulting in cashflow of %s. This is a change of %s from base budget cashflow.",
		e.money(projectedRevenue.IntPart()),
		e.money(projectedExpenses.IntPart()),
		e.money(projectedCashflow.IntPart()),
		change,
	)

	return models.ScenarioResult{
		ImpactSummary:     summary,
		ProjectedRevenue:  &projectedRevenue,
		ProjectedExpenses: &projectedExpenses,
		ProjectedCashflow: &projectedCashflow,
	}, nil
}
