package handler

import (
	"net/http"

	"shareit/services/server/helpers"
	"shareit/utils"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	service RequestServiceInterface
}

func NewRequestHandler(service RequestServiceInterface) *RequestHandler {
	return &RequestHandler{service: service}
}

// CreateRequestHandler handles POST /requests
func (h *RequestHandler) CreateRequestHandler(c *gin.Context) {
	userID, err := utils.SharerUserID(c)
	if err != nil {
		helpers.HandleParamError(c, "CreateRequestHandler", err)
		return
	}

	var req helpers.CreateItemRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateRequestHandler", err)
		return
	}

	request, err := h.service.CreateRequest(c.Request.Context(), userID, req.Description)
	if err != nil {
		helpers.RespondServiceError(c, "CreateRequestHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToItemRequestResponse(request), "item request created successfully")
	helpers.LogSuccess("CreateRequestHandler", "item request created successfully", map[string]any{
		"request_id": request.ID,
		"user_id":    userID,
	})
}

// ListUserRequestsHandler handles GET /requests
func (h *RequestHandler) ListUserRequestsHandler(c *gin.Context) {
	userID, err := utils.SharerUserID(c)
	if err != nil {
		helpers.HandleParamError(c, "ListUserRequestsHandler", err)
		return
	}

	requests, err := h.service.ListUserRequests(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondServiceError(c, "ListUserRequestsHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToItemRequestResponses(requests), "item requests retrieved successfully")
	helpers.LogSuccess("ListUserRequestsHandler", "item requests retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(requests),
	})
}

// ListOtherRequestsHandler handles GET /requests/all?from=&size=
func (h *RequestHandler) ListOtherRequestsHandler(c *gin.Context) {
	userID, err := utils.SharerUserID(c)
	if err != nil {
		helpers.HandleParamError(c, "ListOtherRequestsHandler", err)
		return
	}
	from, size, err := utils.Page(c)
	if err != nil {
		helpers.HandleParamError(c, "ListOtherRequestsHandler", err)
		return
	}

	requests, err := h.service.ListOtherRequests(c.Request.Context(), userID, from, size)
	if err != nil {
		helpers.RespondServiceError(c, "ListOtherRequestsHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToItemRequestResponses(requests), "item requests retrieved successfully")
	helpers.LogSuccess("ListOtherRequestsHandler", "item requests retrieved successfully", map[string]any{
		"user_id": userID,
		"from":    from,
		"size":    size,
		"count":   len(requests),
	})
}

// GetRequestHandler handles GET /requests/:requestId
func (h *RequestHandler) GetRequestHandler(c *gin.Context) {
	userID, err := utils.SharerUserID(c)
	if err != nil {
		helpers.HandleParamError(c, "GetRequestHandler", err)
		return
	}
	requestID, err := utils.ParseID(c.Param("requestId"))
	if err != nil {
		helpers.HandleParamError(c, "GetRequestHandler", err)
		return
	}

	request, err := h.service.GetRequest(c.Request.Context(), userID, requestID)
	if err != nil {
		helpers.RespondServiceError(c, "GetRequestHandler", err, map[string]any{"user_id": userID, "request_id": requestID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToItemRequestResponse(request), "item request retrieved successfully")
	helpers.LogSuccess("GetRequestHandler", "item request retrieved successfully", map[string]any{"request_id": requestID})
}
