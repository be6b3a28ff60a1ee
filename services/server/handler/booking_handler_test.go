package handler

import (
	"net/http"
	"testing"
	"time"

	"shareit/internal/models"
	"shareit/internal/shareiterrors"
	"shareit/services/server/helpers"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Test the booking handlers
func TestBookingHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBookingServiceInterface(ctrl)
	handler := NewBookingHandler(mockService)

	router := newTestRouter()
	router.POST("/bookings", handler.CreateBookingHandler)
	router.GET("/bookings", handler.ListBookerBookingsHandler)
	router.GET("/bookings/owner", handler.ListOwnerBookingsHandler)
	router.GET("/bookings/:bookingId", handler.GetBookingHandler)
	router.PATCH("/bookings/:bookingId", handler.UpdateBookingStatusHandler)

	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	booking := models.Booking{
		ID:     7,
		Item:   models.Item{ID: 10, Name: "Drill", Description: "Cordless", Available: true, OwnerID: 1},
		Booker: models.User{ID: 2, Name: "Bob", Email: "bob@example.com"},
		Start:  start,
		End:    end,
		Status: models.StatusWaiting,
	}
	approved := booking
	approved.Status = models.StatusApproved

	tests := []struct {
		name           string
		method         string
		target         string
		userID         int64
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, resp apiResponse)
	}{
		{
			name:        "create_booking",
			method:      http.MethodPost,
			target:      "/bookings",
			userID:      2,
			requestBody: helpers.CreateBookingRequest{ItemID: 10, Start: start, End: end},
			mockSetup: func() {
				mockService.EXPECT().CreateBooking(gomock.Any(), int64(2), int64(10), start, end).Return(booking, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "booking created successfully",
			validateData: func(t *testing.T, resp apiResponse) {
				got := decodeData[helpers.BookingResponse](t, resp)
				require.Equal(t, "WAITING", got.Status)
				require.Equal(t, "2026-06-01T10:00:00Z", got.Start)
				require.Equal(t, int64(10), got.Item.ID)
				require.Equal(t, int64(2), got.Booker.ID)
			},
		},
		{
			name:        "create_booking_unavailable",
			method:      http.MethodPost,
			target:      "/bookings",
			userID:      2,
			requestBody: helpers.CreateBookingRequest{ItemID: 10, Start: start, End: end},
			mockSetup: func() {
				mockService.EXPECT().CreateBooking(gomock.Any(), int64(2), int64(10), start, end).
					Return(models.Booking{}, shareiterrors.ErrItemUnavailable)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "item is not available",
		},
		{
			name:           "create_booking_missing_item",
			method:         http.MethodPost,
			target:         "/bookings",
			userID:         2,
			requestBody:    `{"start":"2026-06-01T10:00:00Z","end":"2026-06-02T10:00:00Z"}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:   "approve",
			method: http.MethodPatch,
			target: "/bookings/7?approved=true",
			userID: 1,
			mockSetup: func() {
				mockService.EXPECT().UpdateBookingStatus(gomock.Any(), int64(1), int64(7), true).Return(approved, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "booking status updated successfully",
			validateData: func(t *testing.T, resp apiResponse) {
				require.Equal(t, "APPROVED", decodeData[helpers.BookingResponse](t, resp).Status)
			},
		},
		{
			name:           "approve_without_flag",
			method:         http.MethodPatch,
			target:         "/bookings/7",
			userID:         1,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request parameters",
		},
		{
			name:   "approve_by_booker",
			method: http.MethodPatch,
			target: "/bookings/7?approved=false",
			userID: 2,
			mockSetup: func() {
				mockService.EXPECT().UpdateBookingStatus(gomock.Any(), int64(2), int64(7), false).
					Return(models.Booking{}, shareiterrors.ErrNotOwner)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "only the item owner can do this",
		},
		{
			name:   "approve_twice",
			method: http.MethodPatch,
			target: "/bookings/7?approved=true",
			userID: 1,
			mockSetup: func() {
				mockService.EXPECT().UpdateBookingStatus(gomock.Any(), int64(1), int64(7), true).
					Return(models.Booking{}, shareiterrors.ErrBookingDecided)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "booking status has already been decided",
		},
		{
			name:   "get_by_stranger",
			method: http.MethodGet,
			target: "/bookings/7",
			userID: 3,
			mockSetup: func() {
				mockService.EXPECT().GetBooking(gomock.Any(), int64(3), int64(7)).
					Return(models.Booking{}, shareiterrors.ErrAccessDenied)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "booking is visible to its booker and the item owner only",
		},
		{
			name:   "list_booker_default_state",
			method: http.MethodGet,
			target: "/bookings",
			userID: 2,
			mockSetup: func() {
				mockService.EXPECT().ListBookerBookings(gomock.Any(), int64(2), "ALL", 0, 10).
					Return([]models.Booking{booking}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bookings retrieved successfully",
			validateData: func(t *testing.T, resp apiResponse) {
				require.Len(t, decodeData[[]helpers.BookingResponse](t, resp), 1)
			},
		},
		{
			name:   "list_owner_future_paged",
			method: http.MethodGet,
			target: "/bookings/owner?state=FUTURE&from=5&size=5",
			userID: 1,
			mockSetup: func() {
				mockService.EXPECT().ListOwnerBookings(gomock.Any(), int64(1), "FUTURE", 5, 5).
					Return([]models.Booking{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bookings retrieved successfully",
		},
		{
			name:   "list_unknown_state",
			method: http.MethodGet,
			target: "/bookings?state=UNSUPPORTED_STATUS",
			userID: 2,
			mockSetup: func() {
				mockService.EXPECT().ListBookerBookings(gomock.Any(), int64(2), "UNSUPPORTED_STATUS", 0, 10).
					Return(nil, shareiterrors.ErrUnknownState)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "unknown state",
		},
		{
			name:           "list_bad_page",
			method:         http.MethodGet,
			target:         "/bookings?from=-1",
			userID:         2,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request parameters",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w, resp := performRequest(t, router, tc.method, tc.target, tc.userID, tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp.Message)
			if tc.validateData != nil {
				tc.validateData(t, resp)
			}
		})
	}
}
