package v1_test

import (
	v1 "github.com/budgetai/backend/internal/controllers/v1"
	"github.com/budgetai/backend/test"
)

func (suite *TestSuiteStandard) TestGetRecommendationsEmpty() {
	recorder := test.Request(suite.T(), suite.session, "GET", "/v1/recommendations", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.RecommendationListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
}

// Without a budget, the refresh produces the onboarding recommendation.
func (suite *TestSuiteStandard) TestGetRecommendationsOnboarding() {
	suite.importSampleData()

	recorder := test.Request(suite.T(), suite.session, "GET", "/v1/recommendations", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.RecommendationListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal([]string{"Create or import a budget to get personalized recommendations."}, response.Data)
}

func (suite *TestSuiteStandard) TestGetRecommendationsWithBudget() {
	suite.createStarterBudget()
	suite.importSampleData()

	recorder := test.Request(suite.T(), suite.session, "GET", "/v1/recommendations", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.RecommendationListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().GreaterOrEqual(len(response.Data), 3)
	suite.Assert().LessOrEqual(len(response.Data), 5)
}

func (suite *TestSuiteStandard) TestOptionsRecommendations() {
	recorder := test.Request(suite.T(), suite.session, "OPTIONS", "/v1/recommendations", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))
}
