package handler

import (
	"errors"
	"net/http"
	"testing"

	"shareit/internal/models"
	"shareit/internal/shareiterrors"
	"shareit/services/server/helpers"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Test CreateUserHandler
func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockUserServiceInterface(ctrl)
	handler := NewUserHandler(mockService)

	router := newTestRouter()
	router.POST("/users", handler.CreateUserHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, resp apiResponse)
	}{
		{
			name:        "success",
			requestBody: helpers.CreateUserRequest{Name: "Ann", Email: "ann@example.com"},
			mockSetup: func() {
				mockService.EXPECT().
					CreateUser(gomock.Any(), models.User{Name: "Ann", Email: "ann@example.com"}).
					Return(models.User{ID: 1, Name: "Ann", Email: "ann@example.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "user created successfully",
			validateData: func(t *testing.T, resp apiResponse) {
				user := decodeData[helpers.UserResponse](t, resp)
				require.Equal(t, helpers.UserResponse{ID: 1, Name: "Ann", Email: "ann@example.com"}, user)
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "duplicate_email",
			requestBody: helpers.CreateUserRequest{Name: "Ann", Email: "ann@example.com"},
			mockSetup: func() {
				mockService.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, shareiterrors.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "email already in use",
		},
		{
			name:        "service_generic_error",
			requestBody: helpers.CreateUserRequest{Name: "Ann", Email: "ann@example.com"},
			mockSetup: func() {
				mockService.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
			validateData: func(t *testing.T, resp apiResponse) {
				require.NotContains(t, resp.Error, "database failure")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w, resp := performRequest(t, router, http.MethodPost, "/users", 0, tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp.Message)
			if tc.validateData != nil {
				tc.validateData(t, resp)
			}
		})
	}
}

// Test the user lookup, update and delete handlers
func TestUserByIDHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockUserServiceInterface(ctrl)
	handler := NewUserHandler(mockService)

	router := newTestRouter()
	router.GET("/users", handler.ListUsersHandler)
	router.GET("/users/:userId", handler.GetUserHandler)
	router.PATCH("/users/:userId", handler.UpdateUserHandler)
	router.DELETE("/users/:userId", handler.DeleteUserHandler)

	ann := models.User{ID: 1, Name: "Ann", Email: "ann@example.com"}
	newName := "Anna"

	tests := []struct {
		name           string
		method         string
		target         string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "get_found",
			method: http.MethodGet,
			target: "/users/1",
			mockSetup: func() {
				mockService.EXPECT().GetUser(gomock.Any(), int64(1)).Return(ann, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "user retrieved successfully",
		},
		{
			name:   "get_missing",
			method: http.MethodGet,
			target: "/users/2",
			mockSetup: func() {
				mockService.EXPECT().GetUser(gomock.Any(), int64(2)).Return(models.User{}, shareiterrors.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "user not found",
		},
		{
			name:           "get_bad_id",
			method:         http.MethodGet,
			target:         "/users/abc",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request parameters",
		},
		{
			name:   "list",
			method: http.MethodGet,
			target: "/users",
			mockSetup: func() {
				mockService.EXPECT().ListUsers(gomock.Any()).Return([]models.User{ann}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "users retrieved successfully",
		},
		{
			name:        "patch_name",
			method:      http.MethodPatch,
			target:      "/users/1",
			requestBody: helpers.UpdateUserRequest{Name: &newName},
			mockSetup: func() {
				mockService.EXPECT().UpdateUser(gomock.Any(), int64(1), models.UserPatch{Name: &newName}).
					Return(models.User{ID: 1, Name: newName, Email: ann.Email}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "user updated successfully",
		},
		{
			name:        "patch_email_taken",
			method:      http.MethodPatch,
			target:      "/users/1",
			requestBody: `{"email":"bob@example.com"}`,
			mockSetup: func() {
				mockService.EXPECT().UpdateUser(gomock.Any(), int64(1), gomock.Any()).
					Return(models.User{}, shareiterrors.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "email already in use",
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/users/1",
			mockSetup: func() {
				mockService.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "user deleted successfully",
		},
		{
			name:   "delete_missing",
			method: http.MethodDelete,
			target: "/users/9",
			mockSetup: func() {
				mockService.EXPECT().DeleteUser(gomock.Any(), int64(9)).Return(shareiterrors.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "user not found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w, resp := performRequest(t, router, tc.method, tc.target, 0, tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp.Message)
		})
	}
}
