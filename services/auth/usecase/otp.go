package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/inviteflow/auth-service/internal/pkg/logger"
	"github.com/inviteflow/auth-service/internal/pkg/models"
	"github.com/inviteflow/auth-service/services/auth"
)

// generateOTPCode returns a cryptographically unpredictable six digit code,
// uniform over 100000-999999.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// issueOTP stores a fresh OTP for the email, superseding any prior record,
// and delivers it. A delivery failure is returned to the caller but the
// stored OTP stays put: retrying the send step safely reissues.
func (u *AuthUC) issueOTP(ctx context.Context, email string) error {
	code, err := generateOTPCode()
	if err != nil {
		return err
	}

	now := time.Now()
	otp := &models.OTP{
		Email:     email,
		Code:      code,
		CreatedAt: now.Unix(),
		ExpiresAt: now.Add(time.Duration(u.cfg.OTP.TTLMinutes) * time.Minute).Unix(),
	}

	if err := u.otpRepo.StoreOTP(ctx, otp); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := u.authGW.SendOTPEmail(ctx, email, code); err != nil {
		return fmt.Errorf("failed to deliver OTP: %w", err)
	}

	logger.Info("Issued OTP",
		logger.String("email", email),
		logger.Int64("expires_at", otp.ExpiresAt))

	return nil
}

// SendOTP issues an OTP for signup. The email does not need to belong to an
// existing account.
func (u *AuthUC) SendOTP(ctx context.Context, email string) error {
	return u.issueOTP(ctx, email)
}

// SendForgotPasswordOTP issues an OTP for password recovery. Unlike signup,
// the email must already belong to an account.
func (u *AuthUC) SendForgotPasswordOTP(ctx context.Context, email string) error {
	if _, err := u.userRepo.GetUserByEmail(ctx, email); err != nil {
		return err
	}

	return u.issueOTP(ctx, email)
}

// VerifyForgotPasswordOTP consumes the OTP for the email. Consumption
// deletes the record, so a subsequent ResetPassword call is gated on its
// own live OTP; see ResetPassword.
func (u *AuthUC) VerifyForgotPasswordOTP(ctx context.Context, email, otp string) error {
	ok, err := u.otpRepo.ConsumeOTP(ctx, email, otp)
	if err != nil {
		return fmt.Errorf("failed to verify OTP: %w", err)
	}
	if !ok {
		return auth.ErrInvalidOTP
	}

	return nil
}

// ResetPassword overwrites the account password. It is gated on a live OTP
// record existing for the email at call time, independent of any earlier
// VerifyForgotPasswordOTP call (which consumes the record). Both gates are
// inherited behavior and kept as-is.
func (u *AuthUC) ResetPassword(ctx context.Context, email, newPassword string) error {
	live, err := u.otpRepo.HasLiveOTP(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check OTP: %w", err)
	}
	if !live {
		return auth.ErrNoLiveOTP
	}

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := u.userRepo.UpdatePassword(ctx, email, hash); err != nil {
		return err
	}

	if err := u.otpRepo.InvalidateOTP(ctx, email); err != nil {
		logger.Warn("Failed to invalidate OTP after password reset",
			logger.String("email", email),
			logger.Err(err))
	}

	// Best-effort event; the reset already succeeded.
	event := &models.PasswordResetEvent{
		UserID:  user.ID.String(),
		Email:   email,
		ResetAt: time.Now(),
	}
	if err := u.authGW.PublishPasswordReset(ctx, event); err != nil {
		logger.Warn("Failed to publish password reset event",
			logger.String("user_id", event.UserID),
			logger.Err(err))
	}

	logger.Info("Password reset",
		logger.String("user_id", user.ID.String()))

	return nil
}
