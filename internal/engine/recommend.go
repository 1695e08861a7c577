package engine

import (
	"context"

	"github.com/budgetai/backend/internal/models"
)

// onboardingRecommendation is the single recommendation returned when no
// budget exists yet.
const onboardingRecommendation = "Create or import a budget to get personalized recommendations."

// Recommendations returns actionable optimization suggestions for the
// budget.
//
// Without a budget, exactly one onboarding message is returned. With a
// budget, between 3 and 5 suggestions are drawn from a fixed candidate
// pool; the count is randomized per call, so neither count nor order is
// stable across calls with identical input.
func (e *Engine) Recommendations(ctx context.Context, budget *models.Budget) ([]string, error) {
	if budget == nil {
		return []string{onboardingRecommendation}, nil
	}

	// Recommendations are cheaper than a full forecast round-trip
	if err := e.simulate(ctx, e.latency/2); err != nil {
		return nil, err
	}

	marketing := int64(0)
	for _, item := range budget.Items {
		if item.Category == "Marketing Expenses" {
			marketing = item.PlannedAmount.Round(0).IntPart()
			break
		}
	}

	candidates := []string{
		"Consider renegotiating supplier contracts for operational costs to potentially reduce expenses by 5-10%.",
		"Explore targeted marketing campaigns for high-margin services/products to boost revenue.",
		e.printer.Sprintf("Review discretionary spending in categories like 'Marketing Expenses'. Current planned amount is $%d.", marketing),
		"Implement a tiered pricing strategy to capture a wider customer base and increase average revenue per user.",
		"Monitor cash flow closely for the next quarter and maintain a contingency fund of at least 15% of monthly operating expenses.",
	}

	count := 3 + e.intn(3)
	return candidates[:count], nil
}
