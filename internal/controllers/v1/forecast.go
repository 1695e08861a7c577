package v1

import (
	"net/http"

	"github.com/budgetai/backend/internal/httputil"
	"github.com/budgetai/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterForecastRoutes registers the routes for forecasts with the
// RouterGroup that is passed.
func RegisterForecastRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsForecastList)
		r.GET("", GetForecasts)
		r.POST("", RefreshForecasts)
	}

	// Forecast for a single metric
	{
		r.OPTIONS("/:kind", OptionsForecastDetail)
		r.GET("/:kind", GetForecast)
	}
}

type ForecastListResponse struct {
	Data  []models.Forecast `json:"data"`                                                     // List of forecasts
	Error *string           `json:"error" example:"there is no forecast matching your query"` // The error, if any occurred
}

type ForecastResponse struct {
	Data  *models.Forecast `json:"data"`                                                                                // The forecast
	Error *string          `json:"error" example:"the forecast kind must be one of 'revenue', 'expenses' or 'cashflow'"` // The error, if any occurred
}

// OptionsForecastList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Forecasts
//	@Success		204
//	@Router			/v1/forecasts [options]
func OptionsForecastList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsForecastDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Forecasts
//	@Success		204
//	@Router			/v1/forecasts/{kind} [options]
func OptionsForecastDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetForecasts returns all current forecasts
//
//	@Summary		List forecasts
//	@Description	Returns the current forecasts for all metrics
//	@Tags			Forecasts
//	@Produce		json
//	@Success		200	{object}	ForecastListResponse
//	@Failure		500	{object}	ForecastListResponse
//	@Router			/v1/forecasts [get]
func GetForecasts(c *gin.Context) {
	forecasts, err := models.Forecasts(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ForecastListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ForecastListResponse{Data: forecasts})
}

// RefreshForecasts regenerates all forecasts
//
//	@Summary		Refresh forecasts
//	@Description	Regenerates the forecasts for all metrics together with the recommendations. Either all of them are replaced or none.
//	@Tags			Forecasts
//	@Produce		json
//	@Success		201	{object}	ForecastListResponse
//	@Failure		400	{object}	ForecastListResponse
//	@Failure		500	{object}	ForecastListResponse
//	@Failure		503	{object}	ForecastListResponse
//	@Router			/v1/forecasts [post]
func RefreshForecasts(c *gin.Context) {
	if err := appSession.Refresh(c.Request.Context()); err != nil {
		s := err.Error()
		c.JSON(status(err), ForecastListResponse{
			Error: &s,
		})
		return
	}

	forecasts, err := models.Forecasts(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ForecastListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, ForecastListResponse{Data: forecasts})
}

// GetForecast returns the forecast for one metric
//
//	@Summary		Get forecast
//	@Description	Returns the current forecast for a single metric
//	@Tags			Forecasts
//	@Produce		json
//	@Success		200		{object}	ForecastResponse
//	@Failure		400		{object}	ForecastResponse
//	@Failure		404		{object}	ForecastResponse
//	@Failure		500		{object}	ForecastResponse
//	@Param			kind	path		string	true	"Forecast kind, one of 'revenue', 'expenses', 'cashflow'"
//	@Router			/v1/forecasts/{kind} [get]
func GetForecast(c *gin.Context) {
	kind, err := models.ParseForecastKind(c.Param("kind"))
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ForecastResponse{
			Error: &s,
		})
		return
	}

	forecast, err := models.ForecastByKind(models.DB, kind)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ForecastResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ForecastResponse{Data: &forecast})
}
