package utils

import (
	"github.com/google/uuid"
)

// NewRequestID returns a fresh identifier for correlating a request across services
func NewRequestID() string {
	return uuid.New().String()
}

// IsRequestID reports whether s is a well-formed request identifier
func IsRequestID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
