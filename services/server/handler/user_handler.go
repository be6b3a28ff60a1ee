package handler

import (
	"net/http"

	"shareit/internal/models"
	"shareit/services/server/helpers"
	"shareit/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUserHandler handles POST /users
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var req helpers.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateUserHandler", err)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), models.User{Name: req.Name, Email: req.Email})
	if err != nil {
		helpers.RespondServiceError(c, "CreateUserHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToUserResponse(user), "user created successfully")
	helpers.LogSuccess("CreateUserHandler", "user created successfully", map[string]any{
		"user_id": user.ID,
	})
}

// GetUserHandler handles GET /users/:userId
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	userID, err := utils.ParseID(c.Param("userId"))
	if err != nil {
		helpers.HandleParamError(c, "GetUserHandler", err)
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondServiceError(c, "GetUserHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponse(user), "user retrieved successfully")
	helpers.LogSuccess("GetUserHandler", "user retrieved successfully", map[string]any{"user_id": userID})
}

// ListUsersHandler handles GET /users
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		helpers.RespondServiceError(c, "ListUsersHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponses(users), "users retrieved successfully")
	helpers.LogSuccess("ListUsersHandler", "users retrieved successfully", map[string]any{"count": len(users)})
}

// UpdateUserHandler handles PATCH /users/:userId
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	userID, err := utils.ParseID(c.Param("userId"))
	if err != nil {
		helpers.HandleParamError(c, "UpdateUserHandler", err)
		return
	}

	var req helpers.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateUserHandler", err)
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), userID, models.UserPatch{Name: req.Name, Email: req.Email})
	if err != nil {
		helpers.RespondServiceError(c, "UpdateUserHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponse(user), "user updated successfully")
	helpers.LogSuccess("UpdateUserHandler", "user updated successfully", map[string]any{"user_id": userID})
}

// DeleteUserHandler handles DELETE /users/:userId
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	userID, err := utils.ParseID(c.Param("userId"))
	if err != nil {
		helpers.HandleParamError(c, "DeleteUserHandler", err)
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), userID); err != nil {
		helpers.RespondServiceError(c, "DeleteUserHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "user deleted successfully")
	helpers.LogSuccess("DeleteUserHandler", "user deleted successfully", map[string]any{"user_id": userID})
}
