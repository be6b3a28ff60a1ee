package handler

import (
	"context"
	"time"

	"shareit/internal/models"
)

//go:generate mockgen -source=services.go -destination=mock_services.go -package=handler

type UserServiceInterface interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type ItemServiceInterface interface {
	CreateItem(ctx context.Context, ownerID int64, item models.Item) (models.Item, error)
	UpdateItem(ctx context.Context, userID, itemID int64, patch models.ItemPatch) (models.Item, error)
	GetItem(ctx context.Context, userID, itemID int64) (models.ItemDetails, error)
	ListUserItems(ctx context.Context, userID int64) ([]models.ItemDetails, error)
	SearchItems(ctx context.Context, text string) ([]models.Item, error)
	AddComment(ctx context.Context, userID, itemID int64, text string) (models.Comment, error)
	DeleteItem(ctx context.Context, itemID int64) error
}

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, userID, itemID int64, start, end time.Time) (models.Booking, error)
	UpdateBookingStatus(ctx context.Context, userID, bookingID int64, approved bool) (models.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID int64) (models.Booking, error)
	ListBookerBookings(ctx context.Context, userID int64, state string, from, size int) ([]models.Booking, error)
	ListOwnerBookings(ctx context.Context, userID int64, state string, from, size int) ([]models.Booking, error)
}

type RequestServiceInterface interface {
	CreateRequest(ctx context.Context, userID int64, description string) (models.ItemRequest, error)
	ListUserRequests(ctx context.Context, userID int64) ([]models.ItemRequest, error)
	ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]models.ItemRequest, error)
	GetRequest(ctx context.Context, userID, requestID int64) (models.ItemRequest, error)
}
