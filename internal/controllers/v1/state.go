package v1

import (
	"net/http"

	"github.com/budgetai/backend/internal/httputil"
	"github.com/budgetai/backend/internal/session"
	"github.com/gin-gonic/gin"
)

// RegisterStateRoutes registers the routes for the session state with the
// RouterGroup that is passed.
func RegisterStateRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsState)
	r.GET("", GetState)
	r.PATCH("", UpdateState)
}

// State is the top-level session state.
type State struct {
	View     session.View   `json:"view" example:"DASHBOARD"` // The current view
	Loading  bool           `json:"loading" example:"false"`  // Whether any engine operation is in flight
	InFlight map[string]int `json:"inFlight"`                 // In-flight engine operations by name
}

// StateEditable are the user-settable fields of the session state.
type StateEditable struct {
	View string `json:"view" binding:"required" example:"BUDGET_PLANNER"` // The view to switch to
}

type StateResponse struct {
	Data  *State  `json:"data"`                                                                                                                              // The session state
	Error *string `json:"error" example:"the view must be one of 'DASHBOARD', 'DATA_IMPORT', 'BUDGET_PLANNER', 'SCENARIO_ANALYSIS' or 'ALERTS_RECOMMENDATIONS'"` // The error, if any occurred
}

func currentState() *State {
	return &State{
		View:     appSession.View(),
		Loading:  appSession.Loading(),
		InFlight: appSession.InFlight(),
	}
}

// OptionsState returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			State
//	@Success		204
//	@Router			/v1/state [options]
func OptionsState(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// GetState returns the session state
//
//	@Summary		Get state
//	@Description	Returns the current view and the in-flight engine operations
//	@Tags			State
//	@Produce		json
//	@Success		200	{object}	StateResponse
//	@Router			/v1/state [get]
func GetState(c *gin.Context) {
	c.JSON(http.StatusOK, StateResponse{Data: currentState()})
}

// UpdateState switches the current view
//
//	@Summary		Update state
//	@Description	Switches the current view
//	@Tags			State
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	StateResponse
//	@Failure		400		{object}	StateResponse
//	@Param			state	body		StateEditable	true	"State"
//	@Router			/v1/state [patch]
func UpdateState(c *gin.Context) {
	var editable StateEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, StateResponse{
			Error: &s,
		})
		return
	}

	view, err := session.ParseView(editable.View)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, StateResponse{
			Error: &s,
		})
		return
	}

	appSession.SwitchView(view)

	c.JSON(http.StatusOK, StateResponse{Data: currentState()})
}
