package v1_test

import (
	v1 "github.com/budgetai/backend/internal/controllers/v1"
	"github.com/budgetai/backend/internal/session"
	"github.com/budgetai/backend/test"
)

func (suite *TestSuiteStandard) TestGetState() {
	recorder := test.Request(suite.T(), suite.session, "GET", "/v1/state", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.StateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(session.ViewDashboard, response.Data.View)
	suite.Assert().False(response.Data.Loading)
	suite.Assert().Empty(response.Data.InFlight)
}

func (suite *TestSuiteStandard) TestUpdateState() {
	recorder := test.Request(suite.T(), suite.session, "PATCH", "/v1/state", `{ "view": "BUDGET_PLANNER" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.StateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(session.ViewBudgetPlanner, response.Data.View)

	// The view survives across requests
	recorder = test.Request(suite.T(), suite.session, "GET", "/v1/state", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(session.ViewBudgetPlanner, response.Data.View)
}

func (suite *TestSuiteStandard) TestUpdateStateInvalidView() {
	recorder := test.Request(suite.T(), suite.session, "PATCH", "/v1/state", `{ "view": "REPORTS" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, 400)

	var response v1.StateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(session.ErrUnknownView.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestUpdateStateEmptyBody() {
	recorder := test.Request(suite.T(), suite.session, "PATCH", "/v1/state", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 400)
}

func (suite *TestSuiteStandard) TestOptionsState() {
	recorder := test.Request(suite.T(), suite.session, "OPTIONS", "/v1/state", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("GET, PATCH", recorder.Header().Get("allow"))
}
