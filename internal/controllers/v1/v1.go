// Package v1 implements the handlers for the v1 API.
package v1

import (
	"net/http"

	"github.com/budgetai/backend/internal/httputil"
	"github.com/budgetai/backend/internal/session"
	"github.com/gin-gonic/gin"
)

// appSession is the session all handlers operate on. It is set once at
// startup via Configure.
var appSession *session.Session

// Configure sets the session the v1 handlers operate on.
func Configure(s *session.Session) {
	appSession = s
}

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Historical      string `json:"historical" example:"https://example.com/v1/historical"`           // URL of the historical data endpoint
	Import          string `json:"import" example:"https://example.com/v1/import"`                   // URL of the statement import endpoint
	Forecasts       string `json:"forecasts" example:"https://example.com/v1/forecasts"`             // URL of the forecast collection endpoint
	Budget          string `json:"budget" example:"https://example.com/v1/budget"`                   // URL of the active budget endpoint
	Scenarios       string `json:"scenarios" example:"https://example.com/v1/scenarios"`             // URL of the scenario history endpoint
	Recommendations string `json:"recommendations" example:"https://example.com/v1/recommendations"` // URL of the recommendation list endpoint
	Alerts          string `json:"alerts" example:"https://example.com/v1/alerts"`                   // URL of the alert list endpoint
	State           string `json:"state" example:"https://example.com/v1/state"`                     // URL of the session state endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := httputil.RequestPathV1(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Historical:      url + "/historical",
			Import:          url + "/import",
			Forecasts:       url + "/forecasts",
			Budget:          url + "/budget",
			Scenarios:       url + "/scenarios",
			Recommendations: url + "/recommendations",
			Alerts:          url + "/alerts",
			State:           url + "/state",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
