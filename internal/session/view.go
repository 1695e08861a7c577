package session

import (
	"errors"

	"golang.org/x/exp/slices"
)

// View is one of the mutually exclusive top-level views of the dashboard.
type View string

const (
	ViewDashboard             View = "DASHBOARD"
	ViewDataImport            View = "DATA_IMPORT"
	ViewBudgetPlanner         View = "BUDGET_PLANNER"
	ViewScenarioAnalysis      View = "SCENARIO_ANALYSIS"
	ViewAlertsRecommendations View = "ALERTS_RECOMMENDATIONS"
)

var ErrUnknownView = errors.New("the view must be one of 'DASHBOARD', 'DATA_IMPORT', 'BUDGET_PLANNER', 'SCENARIO_ANALYSIS' or 'ALERTS_RECOMMENDATIONS'")

var views = []View{ViewDashboard, ViewDataImport, ViewBudgetPlanner, ViewScenarioAnalysis, ViewAlertsRecommendations}

// ParseView parses a view from its wire representation.
func ParseView(s string) (View, error) {
	if slices.Contains(views, View(s)) {
		return View(s), nil
	}

	return "", ErrUnknownView
}
