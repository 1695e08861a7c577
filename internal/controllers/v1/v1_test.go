package v1_test

import (
	v1 "github.com/budgetai/backend/internal/controllers/v1"
	"github.com/budgetai/backend/test"
)

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), suite.session, "GET", "/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("http:///v1/historical", response.Links.Historical)
	suite.Assert().Equal("http:///v1/import", response.Links.Import)
	suite.Assert().Equal("http:///v1/forecasts", response.Links.Forecasts)
	suite.Assert().Equal("http:///v1/budget", response.Links.Budget)
	suite.Assert().Equal("http:///v1/scenarios", response.Links.Scenarios)
	suite.Assert().Equal("http:///v1/recommendations", response.Links.Recommendations)
	suite.Assert().Equal("http:///v1/alerts", response.Links.Alerts)
	suite.Assert().Equal("http:///v1/state", response.Links.State)
}

func (suite *TestSuiteStandard) TestOptionsV1() {
	recorder := test.Request(suite.T(), suite.session, "OPTIONS", "/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))
}
