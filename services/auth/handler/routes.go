package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/inviteflow/auth-service/internal/pkg/middleware"
	"github.com/inviteflow/auth-service/internal/pkg/models"
	"github.com/inviteflow/auth-service/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	userHandler *http.UserHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the auth routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/api/auth")

	// Public routes
	authGroup.POST("/send-otp", h.authHandler.SendOTP)
	authGroup.POST("/signup", h.authHandler.Signup)
	authGroup.POST("/login", h.authHandler.Login)

	// Forgot password routes
	authGroup.POST("/forgot-password/send-otp", h.authHandler.SendForgotPasswordOTP)
	authGroup.POST("/forgot-password/verify-otp", h.authHandler.VerifyForgotPasswordOTP)
	authGroup.POST("/forgot-password/reset-password", h.authHandler.ResetPassword)

	// Protected routes
	protected := authGroup.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.GET("/get-user", h.userHandler.GetUser)
}
