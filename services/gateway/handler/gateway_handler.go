package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"shareit/internal/models"
	"shareit/services/gateway/client"
	"shareit/services/gateway/helpers"
	"shareit/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=gateway_handler.go -destination=mock_forwarder.go -package=handler

// Forwarder relays a validated request to the server
type Forwarder interface {
	Forward(ctx context.Context, req client.ForwardRequest) (*client.Response, error)
}

// GatewayHandler validates inbound requests and forwards the valid ones to the server
type GatewayHandler struct {
	client Forwarder
}

func NewGatewayHandler(client Forwarder) *GatewayHandler {
	return &GatewayHandler{client: client}
}

// CreateUserHandler handles POST /users
func (h *GatewayHandler) CreateUserHandler(c *gin.Context) {
	var req helpers.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateUserHandler", err)
		return
	}
	h.forward(c, "CreateUserHandler", "", req)
}

// UpdateUserHandler handles PATCH /users/:userId
func (h *GatewayHandler) UpdateUserHandler(c *gin.Context) {
	if !validPathID(c, "UpdateUserHandler", "userId") {
		return
	}
	var req helpers.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateUserHandler", err)
		return
	}
	h.forward(c, "UpdateUserHandler", "", req)
}

// UserByIDHandler handles GET and DELETE /users/:userId
func (h *GatewayHandler) UserByIDHandler(c *gin.Context) {
	if !validPathID(c, "UserByIDHandler", "userId") {
		return
	}
	h.forward(c, "UserByIDHandler", "", nil)
}

// ListUsersHandler handles GET /users
func (h *GatewayHandler) ListUsersHandler(c *gin.Context) {
	h.forward(c, "ListUsersHandler", "", nil)
}

// CreateItemHandler handles POST /items
func (h *GatewayHandler) CreateItemHandler(c *gin.Context) {
	userID, ok := sharerUserID(c, "CreateItemHandler")
	if !ok {
		return
	}
	var req helpers.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}
	h.forward(c, "CreateItemHandler", userID, req)
}

// UpdateItemHandler handles PATCH /items/:itemId
func (h *GatewayHandler) UpdateItemHandler(c *gin.Context) {
	userID, ok := sharerUserID(c, "UpdateItemHandler")
	if !ok || !validPathID(c, "UpdateItemHandler", "itemId") {
		return
	}
	var req helpers.ItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateItemHandler", err)
		return
	}
	h.forward(c, "UpdateItemHandler", userID, req)
}

// GetItemHandler handles GET /items/:itemId
func (h *GatewayHandler) GetItemHandler(c *gin.Context) {
	userID, ok := sharerUserID(c, "GetItemHandler")
	if !ok || !validPathID(c, "GetItemHandler", "itemId") {
		return
	}
	h.forward(c, "GetItemHandler", userID, nil)
}

// ListUserItemsHandler handles GET /items
func (h *GatewayHandler) ListUserItemsHandler(c *gin.Context) {
	userID, ok := sharerUserID(c, "ListUserItemsHandler")
	if !ok {
		return
	}
	h.forward(c, "ListUserItemsHandler", userID, nil)
}

// SearchItemsHandler handles GET /items/search?text=
func (h *GatewayHandler) SearchItemsHandler(c *gin.Context) {
	h.forward(c, "SearchItemsHandler", c.GetHeader(utils.SharerUserIDHeader), nil)
}

// AddCommentHandler handles POST /items/:itemId/comment
func (h *GatewayHandler) AddCommentHandler(c *gin.Context) {
	userID, ok := sharerUserID(c, "AddCommentHandler")
	if !ok || !validPathID(c, "AddCommentHandler", "itemId") {
		return
	}
	var req helpers.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddCommentHandler", err)
		return
	}
	h.forward(c, "AddCommentHandler", userID, req)
}

// DeleteItemHandler handles DELETE /items/:itemId
func (h *GatewayHandler) DeleteItemHandler(c *gin.Context) {
	if !validPathID(c, "DeleteItemHandler", "itemId") {
		return
	}
	h.forward(c, "DeleteItemHandler", c.GetHeader(utils.SharerUserIDHeader), nil)
}

// CreateBookingHandler handles POST /bookings
func (h *GatewayHandler) CreateBookingHandler(c *gin.Context) {
	userID, ok := sharerUserID(c, "CreateBookingHandler")
	if !ok {
		return
	}
	var req helpers.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBookingHandler", err)
		return
	}
	h.forward(c, "CreateBookingHandler", userID, req)
}

// UpdateBookingStatusHandler handles PATCH /bookings/:bookingId?approved=
func (h *GatewayHandler) UpdateBookingStatusHandler(c *gin.Context) {
	userID, ok := sharerUserID(c, "UpdateBookingStatusHandler")
	if !ok || !validPathID(c, "UpdateBookingStatusHandler", "bookingId") {
		return
	}
	if _, err := strconv.ParseBool(c.Query("approved")); err != nil {
		helpers.HandleParamError(c, "UpdateBookingStatusHandler", fmt.Errorf("invalid approved flag %q", c.Query("approved")))
		return
	}
	h.forward(c, "UpdateBookingStatusHandler", userID, nil)
}

// GetBookingHandler handles GET /bookings/:bookingId
func (h *GatewayHandler) GetBookingHandler(c *gin.Context) {
	userID, ok := sharerUserID(c, "GetBookingHandler")
	if !ok || !validPathID(c, "GetBookingHandler", "bookingId") {
		return
	}
	h.forward(c, "GetBookingHandler", userID, nil)
}

// ListBookingsHandler handles GET /bookings and GET /bookings/owner
func (h *GatewayHandler) ListBookingsHandler(c *gin.Context) {
	userID, ok := sharerUserID(c, "ListBookingsHandler")
	if !ok {
		return
	}
	if _, err := models.ParseBookingState(c.DefaultQuery("state", string(models.StateAll))); err != nil {
		helpers.HandleParamError(c, "ListBookingsHandler", err)
		return
	}
	if _, _, err := utils.Page(c); err != nil {
		helpers.HandleParamError(c, "ListBookingsHandler", err)
		return
	}
	h.forward(c, "ListBookingsHandler", userID, nil)
}

// CreateRequestHandler handles POST /requests
func (h *GatewayHandler) CreateRequestHandler(c *gin.Context) {
	userID, ok := sharerUserID(c, "CreateRequestHandler")
	if !ok {
		return
	}
	var req helpers.ItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateRequestHandler", err)
		return
	}
	h.forward(c, "CreateRequestHandler", userID, req)
}

// ListUserRequestsHandler handles GET /requests
func (h *GatewayHandler) ListUserRequestsHandler(c *gin.Context) {
	userID, ok := sharerUserID(c, "ListUserRequestsHandler")
	if !ok {
		return
	}
	h.forward(c, "ListUserRequestsHandler", userID, nil)
}

// ListOtherRequestsHandler handles GET /requests/all?from=&size=
func (h *GatewayHandler) ListOtherRequestsHandler(c *gin.Context) {
	userID, ok := sharerUserID(c, "ListOtherRequestsHandler")
	if !ok {
		return
	}
	if _, _, err := utils.Page(c); err != nil {
		helpers.HandleParamError(c, "ListOtherRequestsHandler", err)
		return
	}
	h.forward(c, "ListOtherRequestsHandler", userID, nil)
}

// GetRequestHandler handles GET /requests/:requestId
func (h *GatewayHandler) GetRequestHandler(c *gin.Context) {
	userID, ok := sharerUserID(c, "GetRequestHandler")
	if !ok || !validPathID(c, "GetRequestHandler", "requestId") {
		return
	}
	h.forward(c, "GetRequestHandler", userID, nil)
}

// forward relays the request to the same path on the server and copies the answer back
func (h *GatewayHandler) forward(c *gin.Context, handlerName, userID string, payload any) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			helpers.HandleBindError(c, handlerName, err)
			return
		}
	}

	resp, err := h.client.Forward(c.Request.Context(), client.ForwardRequest{
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		Query:     c.Request.URL.Query(),
		UserID:    userID,
		RequestID: c.GetString(utils.RequestIDKey),
		Body:      body,
	})
	if err != nil {
		helpers.HandleForwardError(c, handlerName, err)
		return
	}

	c.Data(resp.StatusCode, resp.ContentType, resp.Body)
	helpers.LogForwarded(handlerName, resp.StatusCode, map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"user_id": userID,
	})
}

// sharerUserID validates the X-Sharer-User-Id header and returns it for forwarding
func sharerUserID(c *gin.Context, handlerName string) (string, bool) {
	id, err := utils.SharerUserID(c)
	if err != nil {
		helpers.HandleParamError(c, handlerName, err)
		return "", false
	}
	return strconv.FormatInt(id, 10), true
}

func validPathID(c *gin.Context, handlerName, param string) bool {
	if _, err := utils.ParseID(c.Param(param)); err != nil {
		helpers.HandleParamError(c, handlerName, fmt.Errorf("%s: %w", param, err))
		return false
	}
	return true
}
