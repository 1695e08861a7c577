package v1_test

import (
	v1 "github.com/budgetai/backend/internal/controllers/v1"
	"github.com/budgetai/backend/internal/models"
	"github.com/budgetai/backend/test"
)

func (suite *TestSuiteStandard) TestGetForecastsEmpty() {
	recorder := test.Request(suite.T(), suite.session, "GET", "/v1/forecasts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.ForecastListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestGetForecasts() {
	suite.importSampleData()

	recorder := test.Request(suite.T(), suite.session, "GET", "/v1/forecasts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.ForecastListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 3)

	for _, forecast := range response.Data {
		suite.Assert().Len(forecast.Points, 12, "forecast %s", forecast.Kind)
		suite.Assert().NotEmpty(forecast.Summary)
	}
}

func (suite *TestSuiteStandard) TestRefreshForecasts() {
	suite.importSampleData()

	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/forecasts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var response v1.ForecastListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 3)
}

// A refresh without historical data is rejected before any engine call.
func (suite *TestSuiteStandard) TestRefreshForecastsWithoutData() {
	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/forecasts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 400)

	var response v1.ForecastListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrHistoricalDataEmpty.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestGetForecast() {
	suite.importSampleData()

	for _, kind := range []string{"revenue", "expenses", "cashflow"} {
		recorder := test.Request(suite.T(), suite.session, "GET", "/v1/forecasts/"+kind, "")
		test.AssertHTTPStatus(suite.T(), &recorder, 200)

		var response v1.ForecastResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Require().NotNil(response.Data)
		suite.Assert().Equal(kind, string(response.Data.Kind))
	}
}

func (suite *TestSuiteStandard) TestGetForecastInvalidKind() {
	recorder := test.Request(suite.T(), suite.session, "GET", "/v1/forecasts/profit", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 400)

	var response v1.ForecastResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrInvalidForecastKind.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestGetForecastNotGenerated() {
	recorder := test.Request(suite.T(), suite.session, "GET", "/v1/forecasts/revenue", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

func (suite *TestSuiteStandard) TestOptionsForecasts() {
	recorder := test.Request(suite.T(), suite.session, "OPTIONS", "/v1/forecasts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), suite.session, "OPTIONS", "/v1/forecasts/revenue", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))
}
