package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inviteflow/auth-service/internal/pkg/middleware"
	"github.com/inviteflow/auth-service/internal/pkg/models"
	"github.com/inviteflow/auth-service/services/auth"
	"github.com/inviteflow/auth-service/services/auth/mocks"
)

func setupUserHandlerTest(t *testing.T) (*UserHandler, *mocks.MockAuthUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockAuthUC(ctrl)
	return NewUserHandler(mockUC), mockUC
}

func doGetUserRequest(t *testing.T, handler *UserHandler, userID interface{}) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/get-user", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set(middleware.ContextKeyUserID, userID)
	}

	require.NoError(t, handler.GetUser(c))
	return rec
}

func TestGetUserHandler_Success(t *testing.T) {
	handler, mockUC := setupUserHandlerTest(t)

	user := &models.User{
		ID:           uuid.New(),
		Name:         "Alice Example",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}

	mockUC.EXPECT().GetUserByID(gomock.Any(), user.ID.String()).Return(user, nil)

	rec := doGetUserRequest(t, handler, user.ID.String())

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	got := body["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, user.ID.String(), got["id"])
	assert.Equal(t, user.Name, got["name"])
	assert.Equal(t, user.Email, got["email"])
	assert.NotContains(t, got, "password_hash")
}

func TestGetUserHandler_UserDeleted(t *testing.T) {
	handler, mockUC := setupUserHandlerTest(t)

	id := uuid.New().String()
	mockUC.EXPECT().GetUserByID(gomock.Any(), id).Return(nil, auth.ErrUserNotFound)

	rec := doGetUserRequest(t, handler, id)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User no longer exists", decodeBody(t, rec)["error"])
}

func TestGetUserHandler_NoSubjectInContext(t *testing.T) {
	handler, _ := setupUserHandlerTest(t)

	rec := doGetUserRequest(t, handler, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeBody(t, rec)["error"])
}
