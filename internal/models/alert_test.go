package models_test

import (
	"github.com/budgetai/backend/internal/models"
)

func (suite *TestSuiteStandard) TestAppendAlert() {
	alert, err := models.AppendAlert(models.DB, models.AlertTypeInfo, models.AlertSeverityInfo, "Forecasts and recommendations updated.", "")
	suite.Require().NoError(err)

	suite.Assert().False(alert.Date.IsZero(), "the alert date must be set on create")

	alerts, err := models.Alerts(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(alerts, 1)
	suite.Assert().Equal(alert.ID, alerts[0].ID)
}

// Alerts accumulate without deduplication, newest first.
func (suite *TestSuiteStandard) TestAlertsAppendOnly() {
	for i := 0; i < 3; i++ {
		_, err := models.AppendAlert(models.DB, models.AlertTypeWarning, models.AlertSeverityWarning, "Please create a budget before running scenarios.", "")
		suite.Require().NoError(err)
	}

	alerts, err := models.Alerts(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(alerts, 3, "identical alerts must not be deduplicated")

	for i := 1; i < len(alerts); i++ {
		suite.Assert().False(alerts[i-1].CreatedAt.Before(alerts[i].CreatedAt), "alerts must be returned newest first")
	}
}
