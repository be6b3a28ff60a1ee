package helpers

import "time"

// Inbound payloads validated by the gateway before they reach the server.
// Custom tags notblank, notpast and future are registered by RegisterValidators.

type UserRequest struct {
	Name  string `json:"name" binding:"notblank"`
	Email string `json:"email" binding:"required,email"`
}

type UserUpdateRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

type ItemRequest struct {
	Name        string `json:"name" binding:"notblank"`
	Description string `json:"description" binding:"notblank"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId,omitempty" binding:"omitempty,gt=0"`
}

type ItemUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"notblank"`
}

type BookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required,gt=0"`
	Start  time.Time `json:"start" binding:"required,notpast"`
	End    time.Time `json:"end" binding:"required,future,gtfield=Start"`
}

type ItemRequestRequest struct {
	Description string `json:"description" binding:"notblank"`
}
