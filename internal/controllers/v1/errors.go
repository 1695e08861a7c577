package v1

import (
	"errors"
	"net/http"

	"github.com/budgetai/backend/internal/engine"
	"github.com/budgetai/backend/internal/models"
)

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, engine.ErrUnavailable) {
		return http.StatusServiceUnavailable
	}

	return http.StatusBadRequest
}

// Import errors
var (
	errWrongFileSuffix = errors.New("this endpoint only supports csv files")
)

// Budget item errors
var (
	errNoSuchBudgetItem = errors.New("there is no budget item matching your query")
)
