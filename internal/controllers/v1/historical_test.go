package v1_test

import (
	v1 "github.com/budgetai/backend/internal/controllers/v1"
	"github.com/budgetai/backend/internal/models"
	"github.com/budgetai/backend/internal/types"
	"github.com/budgetai/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetHistoricalEmpty() {
	recorder := test.Request(suite.T(), suite.session, "GET", "/v1/historical", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.HistoricalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestReplaceHistorical() {
	points := []v1.HistoricalDataPointEditable{
		{Date: types.NewDate(2023, 11, 15), Revenue: decimal.NewFromInt(28000), Expenses: decimal.NewFromInt(15500)},
		{Date: types.NewDate(2023, 12, 15), Revenue: decimal.NewFromInt(32000), Expenses: decimal.NewFromInt(16000), Category: "Consulting"},
	}

	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/historical", points)
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var response v1.HistoricalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Consulting", response.Data[1].Category)

	// Replacing the data set refreshes the forecasts
	forecasts, err := models.Forecasts(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Len(forecasts, 3)
}

// An upload replaces the data set wholesale instead of appending.
func (suite *TestSuiteStandard) TestReplaceHistoricalWholesale() {
	suite.importSampleData()

	points := []v1.HistoricalDataPointEditable{
		{Date: types.NewDate(2024, 1, 15), Revenue: decimal.NewFromInt(40000), Expenses: decimal.NewFromInt(21000)},
	}

	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/historical", points)
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var response v1.HistoricalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestReplaceHistoricalEmptyBody() {
	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/historical", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 400)
}

func (suite *TestSuiteStandard) TestReplaceHistoricalInvalidBody() {
	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/historical", `{ "this": "is not a list" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, 400)
}

func (suite *TestSuiteStandard) TestReplaceHistoricalEmptyList() {
	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/historical", "[]")
	test.AssertHTTPStatus(suite.T(), &recorder, 400)

	var response v1.HistoricalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrHistoricalDataEmpty.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestOptionsHistorical() {
	recorder := test.Request(suite.T(), suite.session, "OPTIONS", "/v1/historical", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("GET, POST", recorder.Header().Get("allow"))
}
