package v1

import (
	"net/http"

	"github.com/budgetai/backend/internal/httputil"
	"github.com/budgetai/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterScenarioRoutes registers the routes for scenarios with the
// RouterGroup that is passed.
func RegisterScenarioRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsScenarios)
	r.GET("", GetScenarios)
	r.POST("", RunScenario)
}

// ScenarioEditable are the user-settable fields of a scenario.
type ScenarioEditable struct {
	Name        string                `json:"name" binding:"required" example:"Aggressive Growth"`
	Description string                `json:"description" example:"Assumes 20% revenue increase"`
	Params      models.ScenarioParams `json:"params"`
}

func (editable ScenarioEditable) model() models.Scenario {
	return models.Scenario{
		Name:        editable.Name,
		Description: editable.Description,
		Params:      editable.Params,
	}
}

// ScenarioHistory is the scenario history together with the result
// history. Both lists are in append order, result i belongs to scenario i.
type ScenarioHistory struct {
	Scenarios []models.Scenario       `json:"scenarios"` // Scenarios in append order
	Results   []models.ScenarioResult `json:"results"`   // Results in the same order
}

type ScenarioListResponse struct {
	Data  *ScenarioHistory `json:"data"`                                                         // The scenario history
	Error *string          `json:"error" example:"there is no scenario matching your query"`     // The error, if any occurred
}

// ScenarioRun is a scenario together with its result.
type ScenarioRun struct {
	Scenario models.Scenario       `json:"scenario"` // The analyzed scenario
	Result   models.ScenarioResult `json:"result"`   // The projected outcome
}

type ScenarioRunResponse struct {
	Data  *ScenarioRun `json:"data"`                                                             // The scenario run
	Error *string      `json:"error" example:"there is no active budget to run scenarios against"` // The error, if any occurred
}

// OptionsScenarios returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Scenarios
//	@Success		204
//	@Router			/v1/scenarios [options]
func OptionsScenarios(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// GetScenarios returns the scenario history
//
//	@Summary		List scenarios
//	@Description	Returns the scenario history together with the result history, both in append order
//	@Tags			Scenarios
//	@Produce		json
//	@Success		200	{object}	ScenarioListResponse
//	@Failure		500	{object}	ScenarioListResponse
//	@Router			/v1/scenarios [get]
func GetScenarios(c *gin.Context) {
	scenarios, err := models.Scenarios(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScenarioListResponse{
			Error: &s,
		})
		return
	}

	results, err := models.ScenarioResults(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScenarioListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ScenarioListResponse{Data: &ScenarioHistory{
		Scenarios: scenarios,
		Results:   results,
	}})
}

// RunScenario analyzes a scenario against the active budget
//
//	@Summary		Run scenario
//	@Description	Analyzes a scenario against the active budget and appends it to the history. Requires an active budget.
//	@Tags			Scenarios
//	@Accept			json
//	@Produce		json
//	@Success		201			{object}	ScenarioRunResponse
//	@Failure		400			{object}	ScenarioRunResponse
//	@Failure		500			{object}	ScenarioRunResponse
//	@Failure		503			{object}	ScenarioRunResponse
//	@Param			scenario	body		ScenarioEditable	true	"Scenario"
//	@Router			/v1/scenarios [post]
func RunScenario(c *gin.Context) {
	var editable ScenarioEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ScenarioRunResponse{
			Error: &s,
		})
		return
	}

	scenario, result, err := appSession.RunScenario(c.Request.Context(), editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScenarioRunResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, ScenarioRunResponse{Data: &ScenarioRun{
		Scenario: scenario,
		Result:   result,
	}})
}
