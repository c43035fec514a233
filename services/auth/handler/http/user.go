package http

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/inviteflow/auth-service/internal/pkg/logger"
	"github.com/inviteflow/auth-service/internal/pkg/middleware"
	"github.com/inviteflow/auth-service/internal/utils"
	"github.com/inviteflow/auth-service/services/auth"
)

// UserHandler handles HTTP requests for authenticated user operations
type UserHandler struct {
	authUC auth.AuthUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(authUC auth.AuthUC) *UserHandler {
	return &UserHandler{
		authUC: authUC,
	}
}

// GetUser returns the public projection of the authenticated user. The
// record is re-read by ID; the token payload is only trusted for the ID
// itself.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID := fmt.Sprintf("%v", c.Get(middleware.ContextKeyUserID))
	if userID == "" || userID == "<nil>" {
		return utils.UnauthorizedResponse(c, "Invalid token")
	}

	user, err := h.authUC.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User no longer exists")
		}
		logger.Error("Failed to retrieve user",
			logger.String("user_id", userID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve user")
	}

	return utils.SuccessResponse(c, 200, "User retrieved successfully", map[string]interface{}{
		"user": user.Public(),
	})
}
