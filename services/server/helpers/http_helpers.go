package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"shareit/internal/shareiterrors"
	"shareit/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleParamError sends a 400 for a malformed header, path or query parameter
func HandleParamError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, err, "invalid request parameters")
	utils.Warn(handlerName+": parameter error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, shareiterrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, shareiterrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, shareiterrors.ErrBookingNotFound):
		return http.StatusNotFound, "booking not found"
	case errors.Is(err, shareiterrors.ErrRequestNotFound):
		return http.StatusNotFound, "item request not found"
	case errors.Is(err, shareiterrors.ErrEmailTaken):
		return http.StatusConflict, "email already in use"
	case errors.Is(err, shareiterrors.ErrItemUnavailable):
		return http.StatusBadRequest, "item is not available"
	case errors.Is(err, shareiterrors.ErrNotOwner):
		return http.StatusBadRequest, "only the item owner can do this"
	case errors.Is(err, shareiterrors.ErrAccessDenied):
		return http.StatusBadRequest, "booking is visible to its booker and the item owner only"
	case errors.Is(err, shareiterrors.ErrUnknownState):
		return http.StatusBadRequest, "unknown state"
	case errors.Is(err, shareiterrors.ErrNotBooked):
		return http.StatusBadRequest, "only users who finished a booking of the item can comment"
	case errors.Is(err, shareiterrors.ErrBookingDecided):
		return http.StatusBadRequest, "booking status has already been decided"
	case errors.Is(err, shareiterrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondServiceError writes the mapped error response and logs the failure.
// Client errors are logged at warn level, server errors at error level.
func RespondServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
