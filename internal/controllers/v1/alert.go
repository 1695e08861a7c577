package v1

import (
	"net/http"

	"github.com/budgetai/backend/internal/httputil"
	"github.com/budgetai/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAlertRoutes registers the routes for alerts with the
// RouterGroup that is passed.
func RegisterAlertRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAlerts)
	r.GET("", GetAlerts)
}

type AlertListResponse struct {
	Data  []models.Alert `json:"data"`                                                  // List of alerts, newest first
	Error *string        `json:"error" example:"there is no alert matching your query"` // The error, if any occurred
}

// OptionsAlerts returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Alerts
//	@Success		204
//	@Router			/v1/alerts [options]
func OptionsAlerts(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetAlerts returns all alerts
//
//	@Summary		List alerts
//	@Description	Returns all alerts of the session, newest first
//	@Tags			Alerts
//	@Produce		json
//	@Success		200	{object}	AlertListResponse
//	@Failure		500	{object}	AlertListResponse
//	@Router			/v1/alerts [get]
func GetAlerts(c *gin.Context) {
	alerts, err := models.Alerts(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AlertListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AlertListResponse{Data: alerts})
}
