package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/inviteflow/auth-service/internal/pkg/logger"
	"github.com/inviteflow/auth-service/internal/pkg/models"
	"github.com/inviteflow/auth-service/internal/utils"
	"github.com/inviteflow/auth-service/services/auth"
)

// AuthHandler handles HTTP requests for the credential lifecycle flows
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// SendOTP handles signup OTP requests
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	if err := h.authUC.SendOTP(c.Request().Context(), req.Email); err != nil {
		logger.Error("Failed to send OTP",
			logger.String("email", req.Email),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to send OTP")
	}

	return utils.SuccessResponse(c, 200, "OTP sent successfully", nil)
}

// Signup handles account creation with an OTP
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Name == "" || req.Email == "" || req.OTP == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Name, email, OTP and password are required")
	}

	user, err := h.authUC.Signup(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidOTP):
			return utils.BadRequestResponse(c, "Invalid or expired OTP")
		case errors.Is(err, auth.ErrDuplicateEmail):
			return utils.ConflictResponse(c, "Email already registered")
		default:
			logger.Error("Signup failed",
				logger.String("email", req.Email),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to create account")
		}
	}

	return utils.SuccessResponse(c, 201, "Signup success", map[string]interface{}{
		"user": user.Summary(),
	})
}

// Login handles credential authentication
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid email or password")
		}
		logger.Error("Login failed",
			logger.String("email", req.Email),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to login")
	}

	return utils.SuccessResponse(c, 200, "Login successful", resp)
}

// SendForgotPasswordOTP handles password recovery OTP requests
func (h *AuthHandler) SendForgotPasswordOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	if err := h.authUC.SendForgotPasswordOTP(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "No account found with this email")
		}
		logger.Error("Failed to send forgot password OTP",
			logger.String("email", req.Email),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to send OTP")
	}

	return utils.SuccessResponse(c, 200, "OTP sent successfully", nil)
}

// VerifyForgotPasswordOTP handles the advisory OTP verification step of the
// recovery flow
func (h *AuthHandler) VerifyForgotPasswordOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Email and OTP are required")
	}

	if err := h.authUC.VerifyForgotPasswordOTP(c.Request().Context(), req.Email, req.OTP); err != nil {
		if errors.Is(err, auth.ErrInvalidOTP) {
			return utils.BadRequestResponse(c, "Invalid or expired OTP")
		}
		logger.Error("Failed to verify OTP",
			logger.String("email", req.Email),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to verify OTP")
	}

	return utils.SuccessResponse(c, 200, "OTP verified", map[string]interface{}{
		"verified": true,
	})
}

// ResetPassword handles the final step of the recovery flow
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.NewPassword == "" {
		return utils.BadRequestResponse(c, "Email and new password are required")
	}

	if err := h.authUC.ResetPassword(c.Request().Context(), req.Email, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, auth.ErrNoLiveOTP):
			return utils.BadRequestResponse(c, "OTP verification required")
		case errors.Is(err, auth.ErrUserNotFound):
			return utils.NotFoundResponse(c, "No account found with this email")
		default:
			logger.Error("Failed to reset password",
				logger.String("email", req.Email),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to reset password")
		}
	}

	return utils.SuccessResponse(c, 200, "Password reset successfully", nil)
}
