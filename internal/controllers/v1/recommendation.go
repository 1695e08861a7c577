package v1

import (
	"net/http"

	"github.com/budgetai/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterRecommendationRoutes registers the routes for recommendations
// with the RouterGroup that is passed.
func RegisterRecommendationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsRecommendations)
	r.GET("", GetRecommendations)
}

type RecommendationListResponse struct {
	Data []string `json:"data"` // The current recommendations
}

// OptionsRecommendations returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Recommendations
//	@Success		204
//	@Router			/v1/recommendations [options]
func OptionsRecommendations(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetRecommendations returns the current recommendations
//
//	@Summary		List recommendations
//	@Description	Returns the recommendations produced by the last refresh
//	@Tags			Recommendations
//	@Produce		json
//	@Success		200	{object}	RecommendationListResponse
//	@Router			/v1/recommendations [get]
func GetRecommendations(c *gin.Context) {
	c.JSON(http.StatusOK, RecommendationListResponse{
		Data: appSession.Recommendations(),
	})
}
