package usecase

import (
	"github.com/inviteflow/auth-service/internal/pkg/models"
	"github.com/inviteflow/auth-service/services/auth"
)

// AuthUC orchestrates the credential lifecycle flows over the user store,
// the OTP store and the outbound gateways.
type AuthUC struct {
	userRepo auth.UserRepo
	otpRepo  auth.OTPRepo
	authGW   auth.AuthGW
	cfg      *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	userRepo auth.UserRepo,
	otpRepo auth.OTPRepo,
	authGW auth.AuthGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		authGW:   authGW,
		cfg:      cfg,
	}
}
