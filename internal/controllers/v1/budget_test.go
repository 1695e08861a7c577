package v1_test

import (
	"fmt"

	v1 "github.com/budgetai/backend/internal/controllers/v1"
	"github.com/budgetai/backend/internal/models"
	"github.com/budgetai/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetBudgetNotFound() {
	recorder := test.Request(suite.T(), suite.session, "GET", "/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

// An empty POST creates the starter budget.
func (suite *TestSuiteStandard) TestCreateBudgetEmptyBody() {
	budget := suite.createStarterBudget()

	suite.Assert().Equal("Untitled Budget", budget.Name)
	suite.Require().Len(budget.Items, 3)
	suite.Assert().True(budget.TotalPlanned.Equal(decimal.NewFromInt(15000)), "planned is %s", budget.TotalPlanned)
}

func (suite *TestSuiteStandard) TestCreateBudget() {
	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/budget", v1.BudgetEditable{
		Name:   "Q3 Operating Budget",
		Period: "July 2024",
		Items: []v1.BudgetItemEditable{
			{Category: "Sales Revenue", PlannedAmount: decimal.NewFromInt(50000)},
			{Category: "Marketing Expenses", PlannedAmount: decimal.NewFromInt(5000), ActualAmount: decimal.NewFromInt(4200)},
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().Equal("Q3 Operating Budget", response.Data.Name)
	suite.Require().Len(response.Data.Items, 2)

	// The untagged revenue line is classified by its category name
	suite.Assert().Equal(models.ItemKindRevenue, response.Data.Items[0].Kind)
	suite.Assert().Equal(models.ItemKindExpense, response.Data.Items[1].Kind)

	suite.Assert().True(response.Data.TotalPlanned.Equal(decimal.NewFromInt(5000)), "planned is %s", response.Data.TotalPlanned)
	suite.Assert().True(response.Data.TotalActual.Equal(decimal.NewFromInt(4200)), "actual is %s", response.Data.TotalActual)
	suite.Assert().True(response.Data.TotalVariance.Equal(decimal.NewFromInt(800)), "variance is %s", response.Data.TotalVariance)
}

// Creating a budget replaces the previous active one.
func (suite *TestSuiteStandard) TestCreateBudgetReplaces() {
	suite.createStarterBudget()

	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/budget", v1.BudgetEditable{Name: "Replacement"})
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	recorder = test.Request(suite.T(), suite.session, "GET", "/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Replacement", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCreateBudgetInvalidBody() {
	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/budget", `{ "name": 2 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, 400)
}

func (suite *TestSuiteStandard) TestUpdateBudget() {
	suite.createStarterBudget()

	recorder := test.Request(suite.T(), suite.session, "PATCH", "/v1/budget", `{ "name": "Renamed Budget" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Renamed Budget", response.Data.Name)
	suite.Assert().Len(response.Data.Items, 3, "a name change must not touch the items")
}

func (suite *TestSuiteStandard) TestUpdateBudgetItems() {
	suite.createStarterBudget()

	recorder := test.Request(suite.T(), suite.session, "PATCH", "/v1/budget", v1.BudgetPatch{
		Items: &[]v1.BudgetItemEditable{
			{Category: "Operational Costs", PlannedAmount: decimal.NewFromInt(8000)},
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data.Items, 1)
	suite.Assert().True(response.Data.TotalPlanned.Equal(decimal.NewFromInt(8000)), "planned is %s", response.Data.TotalPlanned)
}

func (suite *TestSuiteStandard) TestUpdateBudgetNotFound() {
	recorder := test.Request(suite.T(), suite.session, "PATCH", "/v1/budget", `{ "name": "Renamed Budget" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	suite.createStarterBudget()

	recorder := test.Request(suite.T(), suite.session, "DELETE", "/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 204)

	recorder = test.Request(suite.T(), suite.session, "GET", "/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

func (suite *TestSuiteStandard) TestDeleteBudgetNotFound() {
	recorder := test.Request(suite.T(), suite.session, "DELETE", "/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

func (suite *TestSuiteStandard) TestCreateDraftBudget() {
	suite.importSampleData()

	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/budget/draft", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Contains(response.Data.Name, "Draft Budget")
	suite.Assert().Len(response.Data.Items, 6)

	// The draft becomes the active budget
	recorder = test.Request(suite.T(), suite.session, "GET", "/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)
}

func (suite *TestSuiteStandard) TestCreateDraftBudgetWithoutBasis() {
	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/budget/draft", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 400)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrNoBudgetBasis.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestCreateBudgetItem() {
	suite.createStarterBudget()

	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/budget/items", v1.BudgetItemEditable{
		Category:      "Software Subscriptions",
		PlannedAmount: decimal.NewFromInt(1200),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data.Items, 4)
	suite.Assert().True(response.Data.TotalPlanned.Equal(decimal.NewFromInt(16200)), "planned is %s", response.Data.TotalPlanned)
}

func (suite *TestSuiteStandard) TestCreateBudgetItemWithoutBudget() {
	recorder := test.Request(suite.T(), suite.session, "POST", "/v1/budget/items", v1.BudgetItemEditable{Category: "Software"})
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

func (suite *TestSuiteStandard) TestUpdateBudgetItem() {
	budget := suite.createStarterBudget()

	// The marketing line plans 5000
	item := budget.Items[1]
	recorder := test.Request(suite.T(), suite.session, "PATCH", fmt.Sprintf("/v1/budget/items/%s", item.ID), `{ "actualAmount": 4200 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.TotalActual.Equal(decimal.NewFromInt(4200)), "actual is %s", response.Data.TotalActual)
	suite.Assert().True(response.Data.TotalVariance.Equal(decimal.NewFromInt(10800)), "variance is %s", response.Data.TotalVariance)
}

func (suite *TestSuiteStandard) TestUpdateBudgetItemInvalidUUID() {
	suite.createStarterBudget()

	recorder := test.Request(suite.T(), suite.session, "PATCH", "/v1/budget/items/not-a-uuid", `{ "actualAmount": 4200 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, 400)
}

func (suite *TestSuiteStandard) TestUpdateBudgetItemNotFound() {
	suite.createStarterBudget()

	recorder := test.Request(suite.T(), suite.session, "PATCH", "/v1/budget/items/65392deb-5e92-4268-b114-297faad6cdce", `{ "actualAmount": 4200 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

func (suite *TestSuiteStandard) TestDeleteBudgetItem() {
	budget := suite.createStarterBudget()

	recorder := test.Request(suite.T(), suite.session, "DELETE", fmt.Sprintf("/v1/budget/items/%s", budget.Items[1].ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, 204)

	recorder = test.Request(suite.T(), suite.session, "GET", "/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data.Items, 2)

	// Only the operational line remains on the expense side
	suite.Assert().True(response.Data.TotalPlanned.Equal(decimal.NewFromInt(10000)), "planned is %s", response.Data.TotalPlanned)
}

func (suite *TestSuiteStandard) TestDeleteBudgetItemNotFound() {
	suite.createStarterBudget()

	recorder := test.Request(suite.T(), suite.session, "DELETE", "/v1/budget/items/65392deb-5e92-4268-b114-297faad6cdce", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

func (suite *TestSuiteStandard) TestOptionsBudget() {
	recorder := test.Request(suite.T(), suite.session, "OPTIONS", "/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("GET, POST, PATCH, DELETE", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), suite.session, "OPTIONS", "/v1/budget/draft", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), suite.session, "OPTIONS", "/v1/budget/items", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), suite.session, "OPTIONS", "/v1/budget/items/65392deb-5e92-4268-b114-297faad6cdce", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("PATCH, DELETE", recorder.Header().Get("allow"))
}
