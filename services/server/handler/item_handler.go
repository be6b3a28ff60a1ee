package handler

import (
	"net/http"

	"shareit/internal/models"
	"shareit/services/server/helpers"
	"shareit/utils"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	service ItemServiceInterface
}

func NewItemHandler(service ItemServiceInterface) *ItemHandler {
	return &ItemHandler{service: service}
}

// CreateItemHandler handles POST /items
func (h *ItemHandler) CreateItemHandler(c *gin.Context) {
	userID, err := utils.SharerUserID(c)
	if err != nil {
		helpers.HandleParamError(c, "CreateItemHandler", err)
		return
	}

	var req helpers.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), userID, models.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		helpers.RespondServiceError(c, "CreateItemHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToItemResponse(item), "item created successfully")
	helpers.LogSuccess("CreateItemHandler", "item created successfully", map[string]any{
		"item_id": item.ID,
		"user_id": userID,
	})
}

// UpdateItemHandler handles PATCH /items/:itemId
func (h *ItemHandler) UpdateItemHandler(c *gin.Context) {
	userID, err := utils.SharerUserID(c)
	if err != nil {
		helpers.HandleParamError(c, "UpdateItemHandler", err)
		return
	}
	itemID, err := utils.ParseID(c.Param("itemId"))
	if err != nil {
		helpers.HandleParamError(c, "UpdateItemHandler", err)
		return
	}

	var req helpers.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateItemHandler", err)
		return
	}

	patch := models.ItemPatch{Name: req.Name, Description: req.Description, Available: req.Available}
	item, err := h.service.UpdateItem(c.Request.Context(), userID, itemID, patch)
	if err != nil {
		helpers.RespondServiceError(c, "UpdateItemHandler", err, map[string]any{"user_id": userID, "item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToItemResponse(item), "item updated successfully")
	helpers.LogSuccess("UpdateItemHandler", "item updated successfully", map[string]any{
		"item_id": itemID,
		"user_id": userID,
	})
}

// GetItemHandler handles GET /items/:itemId
func (h *ItemHandler) GetItemHandler(c *gin.Context) {
	userID, err := utils.SharerUserID(c)
	if err != nil {
		helpers.HandleParamError(c, "GetItemHandler", err)
		return
	}
	itemID, err := utils.ParseID(c.Param("itemId"))
	if err != nil {
		helpers.HandleParamError(c, "GetItemHandler", err)
		return
	}

	details, err := h.service.GetItem(c.Request.Context(), userID, itemID)
	if err != nil {
		helpers.RespondServiceError(c, "GetItemHandler", err, map[string]any{"user_id": userID, "item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToItemDetailsResponse(details), "item retrieved successfully")
	helpers.LogSuccess("GetItemHandler", "item retrieved successfully", map[string]any{"item_id": itemID})
}

// ListUserItemsHandler handles GET /items
func (h *ItemHandler) ListUserItemsHandler(c *gin.Context) {
	userID, err := utils.SharerUserID(c)
	if err != nil {
		helpers.HandleParamError(c, "ListUserItemsHandler", err)
		return
	}

	items, err := h.service.ListUserItems(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondServiceError(c, "ListUserItemsHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToItemDetailsResponses(items), "items retrieved successfully")
	helpers.LogSuccess("ListUserItemsHandler", "items retrieved successfully", map[string]any{
		"user_id":     userID,
		"items_count": len(items),
	})
}

// SearchItemsHandler handles GET /items/search?text=
func (h *ItemHandler) SearchItemsHandler(c *gin.Context) {
	text := c.Query("text")

	items, err := h.service.SearchItems(c.Request.Context(), text)
	if err != nil {
		helpers.RespondServiceError(c, "SearchItemsHandler", err, map[string]any{"text": text})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToItemResponses(items), "items retrieved successfully")
	helpers.LogSuccess("SearchItemsHandler", "items retrieved successfully", map[string]any{
		"text":        text,
		"items_count": len(items),
	})
}

// AddCommentHandler handles POST /items/:itemId/comment
func (h *ItemHandler) AddCommentHandler(c *gin.Context) {
	userID, err := utils.SharerUserID(c)
	if err != nil {
		helpers.HandleParamError(c, "AddCommentHandler", err)
		return
	}
	itemID, err := utils.ParseID(c.Param("itemId"))
	if err != nil {
		helpers.HandleParamError(c, "AddCommentHandler", err)
		return
	}

	var req helpers.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddCommentHandler", err)
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), userID, itemID, req.Text)
	if err != nil {
		helpers.RespondServiceError(c, "AddCommentHandler", err, map[string]any{"user_id": userID, "item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToCommentResponse(comment), "comment added successfully")
	helpers.LogSuccess("AddCommentHandler", "comment added successfully", map[string]any{
		"comment_id": comment.ID,
		"item_id":    itemID,
		"user_id":    userID,
	})
}

// DeleteItemHandler handles DELETE /items/:itemId
func (h *ItemHandler) DeleteItemHandler(c *gin.Context) {
	itemID, err := utils.ParseID(c.Param("itemId"))
	if err != nil {
		helpers.HandleParamError(c, "DeleteItemHandler", err)
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), itemID); err != nil {
		helpers.RespondServiceError(c, "DeleteItemHandler", err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "item deleted successfully")
	helpers.LogSuccess("DeleteItemHandler", "item deleted successfully", map[string]any{"item_id": itemID})
}
