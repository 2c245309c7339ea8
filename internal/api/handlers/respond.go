package handlers

import (
	"errors"
	"net/http"
	"strings"

	apperrors "hospital-staff-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string            `json:"error" example:"error message"`
	Details map[string]string `json:"details,omitempty"`
	// ConfirmRequired is set when the request was blocked by an advisory
	// warning that the client may confirm through by retrying with
	// confirm=true.
	ConfirmRequired bool `json:"confirm_required,omitempty"`
}

// respondError maps a service error to the right HTTP status. Validation
// problems are 400, missing records 404, rule conflicts 409 and stale shift
// references 422.
func respondError(c *gin.Context, err error) {
	var conflictErr *apperrors.ConflictError

	switch {
	case errors.Is(err, apperrors.ErrStaleShiftReference):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:           conflictErr.Error(),
			Details:         conflictErr.Details,
			ConfirmRequired: conflictErr.Advisory,
		})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err), strings.Contains(err.Error(), "validation failed"):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrZeroDuration),
		errors.Is(err, apperrors.ErrInvalidTimeFormat),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrUnknownArea),
		errors.Is(err, apperrors.ErrUnknownWeekday),
		errors.Is(err, apperrors.ErrNurseNotActive):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
