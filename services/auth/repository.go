package auth

import (
	"context"

	"github.com/inviteflow/auth-service/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/inviteflow/auth-service/services/auth UserRepo,OTPRepo

// UserRepo represents the durable user store. Email uniqueness is enforced
// by the store itself, not by a pre-check.
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// OTPRepo represents the time-bound single-use OTP store. At most one live
// record exists per email; storing a new one supersedes any prior record.
type OTPRepo interface {
	StoreOTP(ctx context.Context, otp *models.OTP) error
	ConsumeOTP(ctx context.Context, email, code string) (bool, error)
	HasLiveOTP(ctx context.Context, email string) (bool, error)
	InvalidateOTP(ctx context.Context, email string) error
}
