package booking

import (
	"context"
	"fmt"
	"time"

	"shareit/internal/models"
	"shareit/internal/repository"
	"shareit/internal/shareiterrors"
)

// Role says from whose side a booking listing is requested
type Role int

const (
	RoleBooker Role = iota
	RoleOwner
)

// BookingService defines the business logic for bookings
type BookingService struct {
	repo repository.ShareItDB
	now  func() time.Time
}

// NewBookingService creates a new BookingService instance
func NewBookingService(repo repository.ShareItDB) *BookingService {
	return &BookingService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source; used by tests
func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	s.now = now
	return s
}

// CreateBooking books an available item for userID. The booking starts as WAITING.
// Overlapping bookings of the same item are not rejected.
func (s *BookingService) CreateBooking(ctx context.Context, userID, itemID int64, start, end time.Time) (models.Booking, error) {
	if !end.After(start) {
		return models.Booking{}, fmt.Errorf("service: %w - end must be after start", shareiterrors.ErrInvalidInput)
	}

	var booking models.Booking

	err := s.repo.WithinTx(ctx, func(tx repository.ShareItDB) error {
		booker, err := tx.GetUser(ctx, userID)
		if err != nil {
			return err
		}

		item, err := tx.GetItem(ctx, itemID)
		if err != nil {
			return err
		}
		if !item.Available {
			return fmt.Errorf("%w: item %d", shareiterrors.ErrItemUnavailable, itemID)
		}

		booking = models.Booking{
			Item:   item,
			Booker: booker,
			Start:  start.UTC(),
			End:    end.UTC(),
			Status: models.StatusWaiting,
		}
		return tx.CreateBooking(ctx, &booking)
	})
	if err != nil {
		return models.Booking{}, fmt.Errorf("service: failed to book item %d for user %d: %w", itemID, userID, err)
	}

	return booking, nil
}

// UpdateBookingStatus approves or rejects a WAITING booking. Only the item owner may decide.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, userID, bookingID int64, approved bool) (models.Booking, error) {
	var booking models.Booking

	err := s.repo.WithinTx(ctx, func(tx repository.ShareItDB) error {
		b, err := tx.GetBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.Item.OwnerID != userID {
			return fmt.Errorf("%w: booking %d, user %d", shareiterrors.ErrNotOwner, bookingID, userID)
		}
		if b.Status != models.StatusWaiting {
			return fmt.Errorf("%w: booking %d is %s", shareiterrors.ErrBookingDecided, bookingID, b.Status)
		}

		b.Status = models.StatusRejected
		if approved {
			b.Status = models.StatusApproved
		}
		if err := tx.UpdateBookingStatus(ctx, bookingID, b.Status); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return models.Booking{}, fmt.Errorf("service: failed to update booking %d: %w", bookingID, err)
	}

	return booking, nil
}

// GetBooking returns a booking visible to its booker and the item owner only
func (s *BookingService) GetBooking(ctx context.Context, userID, bookingID int64) (models.Booking, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("service: failed to get booking %d: %w", bookingID, err)
	}

	if booking.Booker.ID != userID && booking.Item.OwnerID != userID {
		return models.Booking{}, fmt.Errorf("service: %w: booking %d, user %d", shareiterrors.ErrAccessDenied, bookingID, userID)
	}

	return booking, nil
}

// ListBookerBookings returns the bookings made by userID in the given state
func (s *BookingService) ListBookerBookings(ctx context.Context, userID int64, state string, from, size int) ([]models.Booking, error) {
	return s.listBookings(ctx, RoleBooker, userID, state, from, size)
}

// ListOwnerBookings returns the bookings of items owned by userID in the given state
func (s *BookingService) ListOwnerBookings(ctx context.Context, userID int64, state string, from, size int) ([]models.Booking, error) {
	return s.listBookings(ctx, RoleOwner, userID, state, from, size)
}

func (s *BookingService) listBookings(ctx context.Context, role Role, userID int64, rawState string, from, size int) ([]models.Booking, error) {
	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bookings of user %d: %w", userID, err)
	}
	if !exists {
		return nil, fmt.Errorf("service: user %d: %w", userID, shareiterrors.ErrUserNotFound)
	}

	state, err := models.ParseBookingState(rawState)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if from < 0 || size <= 0 {
		return nil, fmt.Errorf("service: %w - from must be >= 0 and size > 0", shareiterrors.ErrInvalidInput)
	}

	filter := BuildFilter(role, userID, state, s.now())
	filter.Offset = from
	filter.Limit = size

	bookings, err := s.repo.FindBookings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bookings of user %d: %w", userID, err)
	}
	return bookings, nil
}

// BuildFilter maps a (role, state) pair to the repository filter evaluated at now
func BuildFilter(role Role, userID int64, state models.BookingState, now time.Time) repository.BookingFilter {
	var f repository.BookingFilter
	if role == RoleOwner {
		f.OwnerID = userID
	} else {
		f.BookerID = userID
	}

	switch state {
	case models.StateCurrent:
		f.StartNotAfter = &now
		f.EndNotBefore = &now
	case models.StatePast:
		f.EndBefore = &now
	case models.StateFuture:
		f.StartAfter = &now
	case models.StateWaiting:
		f.Status = models.StatusWaiting
	case models.StateRejected:
		f.Status = models.StatusRejected
	}
	return f
}
