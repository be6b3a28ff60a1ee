package models

import (
	"fmt"
	"strings"

	"shareit/internal/shareiterrors"
)

// BookingState selects which bookings a listing returns
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

var knownStates = map[BookingState]struct{}{
	StateAll:      {},
	StateCurrent:  {},
	StatePast:     {},
	StateFuture:   {},
	StateWaiting:  {},
	StateRejected: {},
}

// ParseBookingState parses a state name case-insensitively.
// An empty name means ALL.
func ParseBookingState(raw string) (BookingState, error) {
	if strings.TrimSpace(raw) == "" {
		return StateAll, nil
	}
	state := BookingState(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := knownStates[state]; !ok {
		return "", fmt.Errorf("%w: %s", shareiterrors.ErrUnknownState, raw)
	}
	return state, nil
}
