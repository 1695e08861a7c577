package v1_test

import (
	v1 "github.com/budgetai/backend/internal/controllers/v1"
	"github.com/budgetai/backend/internal/models"
	"github.com/budgetai/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetScenariosEmpty() {
	recorder := test.Request(suite.T(), suite.session, "GET", "/v1/scenarios", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.ScenarioListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Empty(response.Data.Scenarios)
	suite.Assert().Empty(response.Data.Results)
}

func (suite *TestSuiteStandard) TestRunScenario() {
	suite.createStarterBudget()

	pct := decimal.NewFromFloat(0.2)
	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/scenarios", v1.ScenarioEditable{
		Name:        "Aggressive Growth",
		Description: "Assumes 20% revenue increase",
		Params:      models.ScenarioParams{RevenueChangePercent: &pct},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var response v1.ScenarioRunResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().Equal("Aggressive Growth", response.Data.Scenario.Name)
	suite.Assert().NotEqual(uuid.Nil, response.Data.Scenario.ID, "the response must carry the persisted scenario ID")
	suite.Assert().Equal(response.Data.Scenario.ID, response.Data.Result.ScenarioID)
	suite.Require().NotNil(response.Data.Result.ProjectedCashflow)

	// The starter budget plans 50000 revenue against 15000 expenses
	suite.Assert().True(response.Data.Result.ProjectedCashflow.Equal(decimal.NewFromInt(45000)), "cashflow is %s", response.Data.Result.ProjectedCashflow)
	suite.Assert().NotEmpty(response.Data.Result.ImpactSummary)

	// The run is appended to both histories
	recorder = test.Request(suite.T(), suite.session, "GET", "/v1/scenarios", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var history v1.ScenarioListResponse
	test.DecodeResponse(suite.T(), &recorder, &history)
	suite.Require().Len(history.Data.Scenarios, 1)
	suite.Require().Len(history.Data.Results, 1)
	suite.Assert().Equal(history.Data.Scenarios[0].ID, history.Data.Results[0].ScenarioID)
}

func (suite *TestSuiteStandard) TestRunScenarioWithoutBudget() {
	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/scenarios", v1.ScenarioEditable{Name: "Aggressive Growth"})
	test.AssertHTTPStatus(suite.T(), &recorder, 400)

	var response v1.ScenarioRunResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrNoActiveBudget.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestRunScenarioWithoutName() {
	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/scenarios", `{ "description": "no name" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, 400)
}

func (suite *TestSuiteStandard) TestOptionsScenarios() {
	recorder := test.Request(suite.T(), suite.session, "OPTIONS", "/v1/scenarios", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("GET, POST", recorder.Header().Get("allow"))
}
