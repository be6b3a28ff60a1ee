package models

import "time"

// BookingStatus is the lifecycle status of a booking
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// User represents a participant who can own items and book them
type User struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

// Item represents a thing a user offers for borrowing
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// Booking represents a reservation of an item by a booker for a time window
type Booking struct {
	ID     int64         `json:"id"`
	Item   Item          `json:"item"`
	Booker User          `json:"booker"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status BookingStatus `json:"status"`
}

// Comment is feedback left on an item by a past booker
type Comment struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"itemId"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
}

// ItemRequest is a user's public wish for an item that does not exist yet.
// Items are filled in at read time from items that reference the request.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequestorID int64     `json:"requestorId"`
	Created     time.Time `json:"created"`
	Items       []Item    `json:"items"`
}

// ItemDetails is the read model returned for item lookups.
// LastBooking and NextBooking are only set for the item owner.
type ItemDetails struct {
	Item
	LastBooking *time.Time `json:"lastBooking"`
	NextBooking *time.Time `json:"nextBooking"`
	Comments    []Comment  `json:"comments"`
}
