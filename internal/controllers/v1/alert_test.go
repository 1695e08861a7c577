package v1_test

import (
	v1 "github.com/budgetai/backend/internal/controllers/v1"
	"github.com/budgetai/backend/internal/models"
	"github.com/budgetai/backend/test"
)

func (suite *TestSuiteStandard) TestGetAlertsEmpty() {
	recorder := test.Request(suite.T(), suite.session, "GET", "/v1/alerts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.AlertListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
}

// The first successful refresh emits the welcome alert.
func (suite *TestSuiteStandard) TestGetAlertsAfterImport() {
	suite.importSampleData()

	recorder := test.Request(suite.T(), suite.session, "GET", "/v1/alerts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.AlertListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Welcome to BudgetAI! Consider importing your latest financials.", response.Data[0].Message)
	suite.Assert().Equal(models.AlertTypeInfo, response.Data[0].Type)
	suite.Assert().Equal(models.AlertSeverityInfo, response.Data[0].Severity)
}

func (suite *TestSuiteStandard) TestOptionsAlerts() {
	recorder := test.Request(suite.T(), suite.session, "OPTIONS", "/v1/alerts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))
}
