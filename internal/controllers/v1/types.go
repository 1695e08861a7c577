package v1

import (
	budgetai_uuid "github.com/budgetai/backend/internal/uuid"
)

type URIID struct {
	ID budgetai_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}
