package utils

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Header names shared by the gateway and the server
const (
	SharerUserIDHeader = "X-Sharer-User-Id"
	RequestIDHeader    = "X-Request-Id"
)

// RequestIDKey is the gin context key holding the request ID
const RequestIDKey = "request_id"

// Pagination defaults
const (
	DefaultFrom = 0
	DefaultSize = 10
)

var (
	errMissingUserID = errors.New("missing " + SharerUserIDHeader + " header")
	errBadPage       = errors.New("from must be >= 0 and size must be > 0")
)

// SharerUserID reads the acting user's ID from the X-Sharer-User-Id header
func SharerUserID(c *gin.Context) (int64, error) {
	raw := c.GetHeader(SharerUserIDHeader)
	if raw == "" {
		return 0, errMissingUserID
	}
	return ParseID(raw)
}

// ParseID parses a positive 64-bit identifier
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// Page reads the from/size query parameters, applying the defaults
func Page(c *gin.Context) (from, size int, err error) {
	from, err = strconv.Atoi(c.DefaultQuery("from", strconv.Itoa(DefaultFrom)))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid from: %w", err)
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultSize)))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size: %w", err)
	}
	if from < 0 || size <= 0 {
		return 0, 0, errBadPage
	}
	return from, size, nil
}
