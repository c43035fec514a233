package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	jwtpkg "github.com/inviteflow/auth-service/internal/pkg/jwt"
	"github.com/inviteflow/auth-service/internal/pkg/logger"
	"github.com/inviteflow/auth-service/internal/pkg/models"
	"github.com/inviteflow/auth-service/internal/utils"
	"github.com/inviteflow/auth-service/services/auth"
)

func hashPassword(plain string) (string, error) {
	hash, err := utils.HashPassword(plain)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// Signup consumes the OTP and creates the account. The OTP is spent before
// the insert, so a duplicate-email conflict leaves it consumed: a second
// attempt for the same email needs a fresh OTP. That ordering is inherited
// and kept.
func (u *AuthUC) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	ok, err := u.otpRepo.ConsumeOTP(ctx, req.Email, req.OTP)
	if err != nil {
		return nil, fmt.Errorf("failed to verify OTP: %w", err)
	}
	if !ok {
		return nil, auth.ErrInvalidOTP
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	// Best-effort event; the account already exists.
	event := &models.UserCreatedEvent{
		UserID:    user.ID.String(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
	if err := u.authGW.PublishUserCreated(ctx, event); err != nil {
		logger.Warn("Failed to publish user created event",
			logger.String("user_id", event.UserID),
			logger.Err(err))
	}

	logger.Info("User created",
		logger.String("user_id", user.ID.String()))

	return user, nil
}

// Login authenticates credentials and mints an access token. An unknown
// email and a wrong password return the same error so accounts cannot be
// enumerated.
func (u *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User logged in",
		logger.String("user_id", user.ID.String()),
		logger.Int64("expires_at", expiresAt))

	return &models.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user.Summary(),
	}, nil
}

// GetUserByID re-reads the user record for a verified token subject. The
// token payload is never trusted for anything beyond the identifier.
func (u *AuthUC) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, auth.ErrUserNotFound
	}

	return u.userRepo.GetUserByID(ctx, id)
}
