package v1

import (
	"net/http"

	"github.com/budgetai/backend/internal/httputil"
	"github.com/budgetai/backend/internal/models"
	"github.com/budgetai/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterHistoricalRoutes registers the routes for historical data with
// the RouterGroup that is passed.
func RegisterHistoricalRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsHistorical)
	r.GET("", GetHistorical)
	r.POST("", ReplaceHistorical)
}

// HistoricalDataPointEditable are the user-settable fields of a historical
// data point.
type HistoricalDataPointEditable struct {
	Date        types.Date      `json:"date" binding:"required" example:"2023-01-15"`
	Revenue     decimal.Decimal `json:"revenue" example:"25000"`
	Expenses    decimal.Decimal `json:"expenses" example:"15000"`
	Category    string          `json:"category,omitempty" example:"Consulting"`
	Description string          `json:"description,omitempty" example:"Project Alpha"`
}

func (editable HistoricalDataPointEditable) model() models.HistoricalDataPoint {
	return models.HistoricalDataPoint{
		Date:        editable.Date,
		Revenue:     editable.Revenue,
		Expenses:    editable.Expenses,
		Category:    editable.Category,
		Description: editable.Description,
	}
}

type HistoricalListResponse struct {
	Data  []models.HistoricalDataPoint `json:"data"`                                                               // List of historical data points
	Error *string                      `json:"error" example:"the historical data set must contain at least one record"` // The error, if any occurred
}

// OptionsHistorical returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Historical
//	@Success		204
//	@Router			/v1/historical [options]
func OptionsHistorical(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// GetHistorical returns the historical data set
//
//	@Summary		List historical data
//	@Description	Returns the historical data set in period order
//	@Tags			Historical
//	@Produce		json
//	@Success		200	{object}	HistoricalListResponse
//	@Failure		500	{object}	HistoricalListResponse
//	@Router			/v1/historical [get]
func GetHistorical(c *gin.Context) {
	points, err := models.HistoricalData(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HistoricalListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, HistoricalListResponse{Data: points})
}

// ReplaceHistorical replaces the historical data set
//
//	@Summary		Replace historical data
//	@Description	Replaces the historical data set wholesale and triggers a forecast refresh. At least one record is required.
//	@Tags			Historical
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	HistoricalListResponse
//	@Failure		400		{object}	HistoricalListResponse
//	@Failure		500		{object}	HistoricalListResponse
//	@Param			records	body		[]HistoricalDataPointEditable	true	"Historical data"
//	@Router			/v1/historical [post]
func ReplaceHistorical(c *gin.Context) {
	var editables []HistoricalDataPointEditable
	if err := httputil.BindData(c, &editables); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, HistoricalListResponse{
			Error: &s,
		})
		return
	}

	points := make([]models.HistoricalDataPoint, 0, len(editables))
	for _, editable := range editables {
		points = append(points, editable.model())
	}

	if err := appSession.Import(c.Request.Context(), points); err != nil {
		s := err.Error()
		c.JSON(status(err), HistoricalListResponse{
			Error: &s,
		})
		return
	}

	stored, err := models.HistoricalData(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HistoricalListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, HistoricalListResponse{Data: stored})
}
