package v1

import (
	"net/http"

	"github.com/budgetai/backend/internal/httputil"
	"github.com/budgetai/backend/internal/importer"
	"github.com/budgetai/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterImportRoutes registers the routes for imports with the
// RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", Import)
}

// OptionsImport returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Import
//	@Success		204
//	@Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// Import imports a financial statement
//
//	@Summary		Import statement
//	@Description	Parses an uploaded CSV statement into the historical data set and triggers a forecast refresh. Without a file, the built-in sample data set is loaded.
//	@Tags			Import
//	@Accept			multipart/form-data
//	@Produce		json
//	@Success		201		{object}	HistoricalListResponse
//	@Failure		400		{object}	HistoricalListResponse
//	@Failure		500		{object}	HistoricalListResponse
//	@Param			file	formData	file	false	"Statement to import"
//	@Router			/v1/import [post]
func Import(c *gin.Context) {
	points, err := uploadedPoints(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, HistoricalListResponse{
			Error: &s,
		})
		return
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

// uploadedPoints parses the uploaded statement. A request without a file
// falls back to the sample data set, mirroring the demo import.
func uploadedPoints(c *gin.Context) ([]models.HistoricalDataPoint, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil || err == http.ErrMissingFile {
		return importer.SampleData(), nil
	}

	if err != nil {
		return nil, err
	}

	if !glob.Glob("*.csv", formFile.Filename) {
		return nil, errWrongFileSuffix
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return importer.CSVParser{}.Parse(f)
}
