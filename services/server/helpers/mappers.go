package helpers

import (
	"time"

	"shareit/internal/models"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func ToUserResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

func ToItemResponse(i models.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
	}
}

func ToItemResponses(items []models.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, ToItemResponse(i))
	}
	return out
}

func ToCommentResponse(c models.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    formatTime(c.Created),
	}
}

func ToItemDetailsResponse(d models.ItemDetails) ItemDetailsResponse {
	comments := make([]CommentResponse, 0, len(d.Comments))
	for _, c := range d.Comments {
		comments = append(comments, ToCommentResponse(c))
	}
	return ItemDetailsResponse{
		ItemResponse: ToItemResponse(d.Item),
		LastBooking:  formatOptionalTime(d.LastBooking),
		NextBooking:  formatOptionalTime(d.NextBooking),
		Comments:     comments,
	}
}

func ToItemDetailsResponses(details []models.ItemDetails) []ItemDetailsResponse {
	out := make([]ItemDetailsResponse, 0, len(details))
	for _, d := range details {
		out = append(out, ToItemDetailsResponse(d))
	}
	return out
}

func ToBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Item:   ToItemResponse(b.Item),
		Booker: ToUserResponse(b.Booker),
		Start:  formatTime(b.Start),
		End:    formatTime(b.End),
		Status: string(b.Status),
	}
}

func ToBookingResponses(bookings []models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToBookingResponse(b))
	}
	return out
}

func ToItemRequestResponse(r models.ItemRequest) ItemRequestResponse {
	return ItemRequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Created:     formatTime(r.Created),
		Items:       ToItemResponses(r.Items),
	}
}

func ToItemRequestResponses(requests []models.ItemRequest) []ItemRequestResponse {
	out := make([]ItemRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, ToItemRequestResponse(r))
	}
	return out
}
