package repository

import (
	"context"
	"time"

	model "shareit/internal/models"
)

// UserStore persists users
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, user model.User) error
	DeleteUser(ctx context.Context, id int64) error
	UserExists(ctx context.Context, id int64) (bool, error)
	EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error)
}

// ItemStore persists items
type ItemStore interface {
	CreateItem(ctx context.Context, item *model.Item) error
	GetItem(ctx context.Context, id int64) (model.Item, error)
	UpdateItem(ctx context.Context, item model.Item) error
	DeleteItem(ctx context.Context, id int64) error
	ListItemsByOwner(ctx context.Context, ownerID int64) ([]model.Item, error)
	SearchAvailableItems(ctx context.Context, text string) ([]model.Item, error)
	ListItemsByRequests(ctx context.Context, requestIDs []int64) ([]model.Item, error)
}

// BookingStore persists bookings and answers the booking queries the services need
type BookingStore interface {
	CreateBooking(ctx context.Context, booking *model.Booking) error
	GetBooking(ctx context.Context, id int64) (model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) error
	FindBookings(ctx context.Context, filter BookingFilter) ([]model.Booking, error)
	BookingDates(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]ItemBookingDates, error)
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

// CommentStore persists comments
type CommentStore interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	ListCommentsByItems(ctx context.Context, itemIDs []int64) ([]model.Comment, error)
}

// RequestStore persists item requests
type RequestStore interface {
	CreateRequest(ctx context.Context, request *model.ItemRequest) error
	GetRequest(ctx context.Context, id int64) (model.ItemRequest, error)
	ListRequestsByRequestor(ctx context.Context, requestorID int64) ([]model.ItemRequest, error)
	ListRequestsExcept(ctx context.Context, requestorID int64, offset, limit int) ([]model.ItemRequest, error)
}

// ShareItDB defines the storage interface for the sharing system.
// WithinTx runs fn against a store bound to a single transaction; nested calls reuse it.
type ShareItDB interface {
	UserStore
	ItemStore
	BookingStore
	CommentStore
	RequestStore
	WithinTx(ctx context.Context, fn func(tx ShareItDB) error) error
}

// BookingFilter narrows FindBookings. Zero values mean "no constraint",
// except Limit which must be positive. Results are ordered by start, newest first.
type BookingFilter struct {
	BookerID      int64
	OwnerID       int64
	Status        model.BookingStatus
	StartNotAfter *time.Time
	StartAfter    *time.Time
	EndNotBefore  *time.Time
	EndBefore     *time.Time
	Offset        int
	Limit         int
}

// ItemBookingDates holds the end of the latest finished booking and the
// start of the earliest upcoming booking of one item.
type ItemBookingDates struct {
	LastEnd   *time.Time
	NextStart *time.Time
}
