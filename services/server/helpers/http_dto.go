package helpers

import "time"

// Request DTOs. The gateway has already validated the payloads; the server
// only binds what it needs to avoid nil dereferences.

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

type CreateItemRequestPayload struct {
	Description string `json:"description"`
}

// Response DTOs

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

type CommentResponse struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
	Created    string `json:"created"`
}

type ItemDetailsResponse struct {
	ItemResponse
	LastBooking *string           `json:"lastBooking"`
	NextBooking *string           `json:"nextBooking"`
	Comments    []CommentResponse `json:"comments"`
}

type BookingResponse struct {
	ID     int64        `json:"id"`
	Item   ItemResponse `json:"item"`
	Booker UserResponse `json:"booker"`
	Start  string       `json:"start"`
	End    string       `json:"end"`
	Status string       `json:"status"`
}

type ItemRequestResponse struct {
	ID          int64          `json:"id"`
	Description string         `json:"description"`
	Created     string         `json:"created"`
	Items       []ItemResponse `json:"items"`
}
