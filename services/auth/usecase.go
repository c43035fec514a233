package auth

import (
	"context"

	"github.com/inviteflow/auth-service/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/inviteflow/auth-service/services/auth AuthUC

// AuthUC represents the credential lifecycle orchestrator
type AuthUC interface {
	// signup with OTP
	SendOTP(ctx context.Context, email string) error
	Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error)

	// session
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// forgot password
	SendForgotPasswordOTP(ctx context.Context, email string) error
	VerifyForgotPasswordOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
}
