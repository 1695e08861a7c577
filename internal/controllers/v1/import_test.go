package v1_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"path/filepath"

	v1 "github.com/budgetai/backend/internal/controllers/v1"
	"github.com/budgetai/backend/internal/models"
	"github.com/budgetai/backend/test"
	"github.com/shopspring/decimal"
)

// statementUpload builds a multipart body with the passed file content.
func (suite *TestSuiteStandard) statementUpload(name, content string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	part, err := mw.CreateFormFile("file", filepath.Base(name))
	if err != nil {
		suite.Assert().FailNow("Could not create form file", "Error: %s", err)
	}

	_, err = fmt.Fprint(part, content)
	if err != nil {
		suite.Assert().FailNow("Could not write file content", "Error: %s", err)
	}
	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}

// Without a file, the sample data set is imported.
func (suite *TestSuiteStandard) TestImportSampleData() {
	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var response v1.HistoricalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 12)

	revenue, _ := models.HistoricalSums(response.Data)
	suite.Assert().True(revenue.Equal(decimal.NewFromInt(366000)), "revenue sum is %s", revenue)

	forecasts, err := models.Forecasts(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Len(forecasts, 3)
}

func (suite *TestSuiteStandard) TestImportStatement() {
	statement := "Date,Revenue,Expenses\n2023-01-15,25000,15000\n2023-02-15,28000,16000\n"
	body, headers := suite.statementUpload("statement.csv", statement)

	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var response v1.HistoricalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteStandard) TestImportWrongSuffix() {
	body, headers := suite.statementUpload("statement.pdf", "not a csv")

	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, 400)

	var response v1.HistoricalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("this endpoint only supports csv files", *response.Error)
}

func (suite *TestSuiteStandard) TestImportBrokenStatement() {
	body, headers := suite.statementUpload("statement.csv", "Month,Income\nJanuary,100\n")

	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, 400)
}

func (suite *TestSuiteStandard) TestOptionsImport() {
	recorder := test.Request(suite.T(), suite.session, "OPTIONS", "/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("POST", recorder.Header().Get("allow"))
}
