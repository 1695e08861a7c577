package models_test

import (
	"github.com/budgetai/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAppendScenarioRun() {
	pct := decimal.NewFromFloat(0.2)
	scenario := models.Scenario{
		Name:        "Aggressive Growth",
		Description: "Assumes 20% revenue increase",
		Params: models.ScenarioParams{
			RevenueChangePercent: &pct,
		},
	}
	revenue := decimal.NewFromInt(60000)
	result := models.ScenarioResult{
		ImpactSummary:    "Scenario projects revenue of $60,000.",
		ProjectedRevenue: &revenue,
	}

	suite.Require().NoError(models.AppendScenarioRun(models.DB, &scenario, &result))

	scenarios, err := models.Scenarios(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(scenarios, 1)
	suite.Assert().Equal(scenario.ID, scenarios[0].ID)

	// Params survive the round trip through the JSON serializer
	suite.Require().NotNil(scenarios[0].Params.RevenueChangePercent)
	suite.Assert().True(scenarios[0].Params.RevenueChangePercent.Equal(pct))

	results, err := models.ScenarioResults(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Assert().Equal(scenario.ID, results[0].ScenarioID)
}

// A result must reference the scenario it was computed for.
func (suite *TestSuiteStandard) TestScenarioResultIntegrity() {
	result := models.ScenarioResult{
		ScenarioID:    uuid.New(),
		ImpactSummary: "Dangling result",
	}

	err := models.DB.Create(&result).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

// Histories stay in append order, result i belongs to scenario i.
func (suite *TestSuiteStandard) TestScenarioHistoryOrder() {
	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		scenario := models.Scenario{Name: name}
		result := models.ScenarioResult{ImpactSummary: name}
		suite.Require().NoError(models.AppendScenarioRun(models.DB, &scenario, &result))
	}

	scenarios, err := models.Scenarios(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(scenarios, 3)

	results, err := models.ScenarioResults(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(results, 3)

	for i := range scenarios {
		suite.Assert().Equal(names[i], scenarios[i].Name)
		suite.Assert().Equal(scenarios[i].ID, results[i].ScenarioID)
	}
}
