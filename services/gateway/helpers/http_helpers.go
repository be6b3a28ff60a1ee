package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"shareit/utils"

	"github.com/gin-gonic/gin"
	"github.com/sony/gobreaker"
)

// HandleBindError sends a standardized JSON error for payloads that fail binding or validation
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": validation error", map[string]any{"error": err.Error()})
}

// HandleParamError sends a 400 for a malformed header, path or query parameter
func HandleParamError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, err, "invalid request parameters")
	utils.Warn(handlerName+": parameter error", map[string]any{"error": err.Error()})
}

// MapForwardError maps a failure to reach the server to HTTP status code and message
func MapForwardError(err error) (int, string) {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return http.StatusServiceUnavailable, "server temporarily unavailable"
	default:
		return http.StatusBadGateway, "server unreachable"
	}
}

// HandleForwardError writes the mapped forwarding failure and logs it
func HandleForwardError(c *gin.Context, handlerName string, err error) {
	status, message := MapForwardError(err)
	utils.JSONError(c, status, err, message)
	utils.Error(handlerName+": forwarding failed", map[string]any{
		"handler": handlerName,
		"path":    c.Request.URL.Path,
		"error":   err.Error(),
	})
}

// LogForwarded standardizes logging of requests relayed to the server
func LogForwarded(handlerName string, status int, ctx map[string]any) {
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["upstream_status"] = status
	utils.Info(handlerName+": request forwarded", ctx)
}
