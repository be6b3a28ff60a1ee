package shareiterrors

import "errors"

// Lookup errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("item request not found")
)

// Business rule and input errors
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrItemUnavailable = errors.New("item is not available for booking")
	ErrNotOwner        = errors.New("user is not the item owner")
	ErrAccessDenied    = errors.New("only the booker or the item owner can view a booking")
	ErrUnknownState    = errors.New("unknown state")
	ErrNotBooked       = errors.New("user has no finished booking of the item")
	ErrBookingDecided  = errors.New("booking status has already been decided")
)

// Uniqueness errors
var (
	ErrEmailTaken = errors.New("email already in use")
)
