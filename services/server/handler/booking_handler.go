package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"shareit/internal/models"
	"shareit/services/server/helpers"
	"shareit/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service BookingServiceInterface
}

func NewBookingHandler(service BookingServiceInterface) *BookingHandler {
	return &BookingHandler{service: service}
}

// CreateBookingHandler handles POST /bookings
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	userID, err := utils.SharerUserID(c)
	if err != nil {
		helpers.HandleParamError(c, "CreateBookingHandler", err)
		return
	}

	var req helpers.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBookingHandler", err)
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), userID, req.ItemID, req.Start, req.End)
	if err != nil {
		helpers.RespondServiceError(c, "CreateBookingHandler", err, map[string]any{"user_id": userID, "item_id": req.ItemID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBookingResponse(booking), "booking created successfully")
	helpers.LogSuccess("CreateBookingHandler", "booking created successfully", map[string]any{
		"booking_id": booking.ID,
		"item_id":    req.ItemID,
		"user_id":    userID,
	})
}

// UpdateBookingStatusHandler handles PATCH /bookings/:bookingId?approved=
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	userID, err := utils.SharerUserID(c)
	if err != nil {
		helpers.HandleParamError(c, "UpdateBookingStatusHandler", err)
		return
	}
	bookingID, err := utils.ParseID(c.Param("bookingId"))
	if err != nil {
		helpers.HandleParamError(c, "UpdateBookingStatusHandler", err)
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		helpers.HandleParamError(c, "UpdateBookingStatusHandler", fmt.Errorf("invalid approved flag %q", c.Query("approved")))
		return
	}

	booking, err := h.service.UpdateBookingStatus(c.Request.Context(), userID, bookingID, approved)
	if err != nil {
		helpers.RespondServiceError(c, "UpdateBookingStatusHandler", err, map[string]any{"user_id": userID, "booking_id": bookingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBookingResponse(booking), "booking status updated successfully")
	helpers.LogSuccess("UpdateBookingStatusHandler", "booking status updated successfully", map[string]any{
		"booking_id": bookingID,
		"status":     booking.Status,
	})
}

// GetBookingHandler handles GET /bookings/:bookingId
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	userID, err := utils.SharerUserID(c)
	if err != nil {
		helpers.HandleParamError(c, "GetBookingHandler", err)
		return
	}
	bookingID, err := utils.ParseID(c.Param("bookingId"))
	if err != nil {
		helpers.HandleParamError(c, "GetBookingHandler", err)
		return
	}

	booking, err := h.service.GetBooking(c.Request.Context(), userID, bookingID)
	if err != nil {
		helpers.RespondServiceError(c, "GetBookingHandler", err, map[string]any{"user_id": userID, "booking_id": bookingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBookingResponse(booking), "booking retrieved successfully")
	helpers.LogSuccess("GetBookingHandler", "booking retrieved successfully", map[string]any{"booking_id": bookingID})
}

// ListBookerBookingsHandler handles GET /bookings?state=&from=&size=
func (h *BookingHandler) ListBookerBookingsHandler(c *gin.Context) {
	h.listBookings(c, "ListBookerBookingsHandler", h.service.ListBookerBookings)
}

// ListOwnerBookingsHandler handles GET /bookings/owner?state=&from=&size=
func (h *BookingHandler) ListOwnerBookingsHandler(c *gin.Context) {
	h.listBookings(c, "ListOwnerBookingsHandler", h.service.ListOwnerBookings)
}

type listBookingsFunc func(ctx context.Context, userID int64, state string, from, size int) ([]models.Booking, error)

func (h *BookingHandler) listBookings(c *gin.Context, handlerName string, list listBookingsFunc) {
	userID, err := utils.SharerUserID(c)
	if err != nil {
		helpers.HandleParamError(c, handlerName, err)
		return
	}
	from, size, err := utils.Page(c)
	if err != nil {
		helpers.HandleParamError(c, handlerName, err)
		return
	}
	state := c.DefaultQuery("state", string(models.StateAll))

	bookings, err := list(c.Request.Context(), userID, state, from, size)
	if err != nil {
		helpers.RespondServiceError(c, handlerName, err, map[string]any{"user_id": userID, "state": state})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBookingResponses(bookings), "bookings retrieved successfully")
	helpers.LogSuccess(handlerName, "bookings retrieved successfully", map[string]any{
		"user_id": userID,
		"state":   state,
		"count":   len(bookings),
	})
}
