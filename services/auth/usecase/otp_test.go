package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inviteflow/auth-service/internal/pkg/models"
	"github.com/inviteflow/auth-service/internal/utils"
	"github.com/inviteflow/auth-service/services/auth"
)

var otpCodePattern = regexp.MustCompile(`^[0-9]{6}$`)

func TestGenerateOTPCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := generateOTPCode()
		require.NoError(t, err)
		assert.Regexp(t, otpCodePattern, code)
		seen[code] = true
	}
	// 50 draws over 900000 values collide with negligible probability
	assert.Greater(t, len(seen), 45)
}

func TestSendOTP_Success(t *testing.T) {
	uc, _, mockOTPRepo, mockAuthGW := setupAuthUCTest(t)
	ctx := context.Background()

	var storedCode string
	mockOTPRepo.EXPECT().StoreOTP(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, otp *models.OTP) error {
			assert.Equal(t, "alice@example.com", otp.Email)
			assert.Regexp(t, otpCodePattern, otp.Code)

			wantExpiry := time.Now().Add(5 * time.Minute).Unix()
			assert.InDelta(t, wantExpiry, otp.ExpiresAt, 2)

			storedCode = otp.Code
			return nil
		})
	mockAuthGW.EXPECT().SendOTPEmail(ctx, "alice@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, code string) error {
			// The delivered code is the stored code
			assert.Equal(t, storedCode, code)
			return nil
		})

	err := uc.SendOTP(ctx, "alice@example.com")

	require.NoError(t, err)
}

func TestSendOTP_DeliveryFailureKeepsOTP(t *testing.T) {
	uc, _, mockOTPRepo, mockAuthGW := setupAuthUCTest(t)
	ctx := context.Background()

	// No InvalidateOTP expectation: a failed send leaves the stored OTP in
	// place so a retry simply supersedes it.
	mockOTPRepo.EXPECT().StoreOTP(ctx, gomock.Any()).Return(nil)
	mockAuthGW.EXPECT().SendOTPEmail(ctx, "alice@example.com", gomock.Any()).
		Return(errors.New("smtp unreachable"))

	err := uc.SendOTP(ctx, "alice@example.com")

	assert.Error(t, err)
}

func TestSendOTP_StoreFailure(t *testing.T) {
	uc, _, mockOTPRepo, _ := setupAuthUCTest(t)
	ctx := context.Background()

	// No SendOTPEmail expectation: nothing is delivered if nothing stored
	mockOTPRepo.EXPECT().StoreOTP(ctx, gomock.Any()).Return(errors.New("redis down"))

	err := uc.SendOTP(ctx, "alice@example.com")

	assert.Error(t, err)
}

func TestSendForgotPasswordOTP_Success(t *testing.T) {
	uc, mockUserRepo, mockOTPRepo, mockAuthGW := setupAuthUCTest(t)
	ctx := context.Background()

	user := &models.User{ID: uuid.New(), Email: "alice@example.com"}

	mockUserRepo.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	mockOTPRepo.EXPECT().StoreOTP(ctx, gomock.Any()).Return(nil)
	mockAuthGW.EXPECT().SendOTPEmail(ctx, user.Email, gomock.Any()).Return(nil)

	err := uc.SendForgotPasswordOTP(ctx, user.Email)

	require.NoError(t, err)
}

func TestSendForgotPasswordOTP_UnknownEmail(t *testing.T) {
	uc, mockUserRepo, _, _ := setupAuthUCTest(t)
	ctx := context.Background()

	// No StoreOTP expectation: recovery OTPs only go to existing accounts
	mockUserRepo.EXPECT().GetUserByEmail(ctx, "nobody@example.com").
		Return(nil, auth.ErrUserNotFound)

	err := uc.SendForgotPasswordOTP(ctx, "nobody@example.com")

	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestVerifyForgotPasswordOTP(t *testing.T) {
	uc, _, mockOTPRepo, _ := setupAuthUCTest(t)
	ctx := context.Background()

	mockOTPRepo.EXPECT().ConsumeOTP(ctx, "alice@example.com", "123456").Return(true, nil)
	assert.NoError(t, uc.VerifyForgotPasswordOTP(ctx, "alice@example.com", "123456"))

	mockOTPRepo.EXPECT().ConsumeOTP(ctx, "alice@example.com", "000000").Return(false, nil)
	assert.ErrorIs(t, uc.VerifyForgotPasswordOTP(ctx, "alice@example.com", "000000"), auth.ErrInvalidOTP)
}

func TestResetPassword_Success(t *testing.T) {
	uc, mockUserRepo, mockOTPRepo, mockAuthGW := setupAuthUCTest(t)
	ctx := context.Background()

	user := &models.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "$2a$10$old"}

	mockOTPRepo.EXPECT().HasLiveOTP(ctx, user.Email).Return(true, nil)
	mockUserRepo.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	mockUserRepo.EXPECT().UpdatePassword(ctx, user.Email, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, hash string) error {
			assert.True(t, utils.CheckPassword("new-password", hash))
			return nil
		})
	mockOTPRepo.EXPECT().InvalidateOTP(ctx, user.Email).Return(nil)
	mockAuthGW.EXPECT().PublishPasswordReset(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PasswordResetEvent) error {
			assert.Equal(t, user.ID.String(), event.UserID)
			assert.Equal(t, user.Email, event.Email)
			return nil
		})

	err := uc.ResetPassword(ctx, user.Email, "new-password")

	require.NoError(t, err)
}

func TestResetPassword_NoLiveOTP(t *testing.T) {
	uc, _, mockOTPRepo, _ := setupAuthUCTest(t)
	ctx := context.Background()

	// No user-repo expectations: the OTP gate fires first
	mockOTPRepo.EXPECT().HasLiveOTP(ctx, "alice@example.com").Return(false, nil)

	err := uc.ResetPassword(ctx, "alice@example.com", "new-password")

	assert.ErrorIs(t, err, auth.ErrNoLiveOTP)
}

func TestResetPassword_UnknownEmail(t *testing.T) {
	uc, mockUserRepo, mockOTPRepo, _ := setupAuthUCTest(t)
	ctx := context.Background()

	mockOTPRepo.EXPECT().HasLiveOTP(ctx, "nobody@example.com").Return(true, nil)
	mockUserRepo.EXPECT().GetUserByEmail(ctx, "nobody@example.com").
		Return(nil, auth.ErrUserNotFound)

	err := uc.ResetPassword(ctx, "nobody@example.com", "new-password")

	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestResetPassword_InvalidateFailureIsNotFatal(t *testing.T) {
	uc, mockUserRepo, mockOTPRepo, mockAuthGW := setupAuthUCTest(t)
	ctx := context.Background()

	user := &models.User{ID: uuid.New(), Email: "alice@example.com"}

	mockOTPRepo.EXPECT().HasLiveOTP(ctx, user.Email).Return(true, nil)
	mockUserRepo.EXPECT().GetUserByEmail(ctx, user.Email).Return(user, nil)
	mockUserRepo.EXPECT().UpdatePassword(ctx, user.Email, gomock.Any()).Return(nil)
	mockOTPRepo.EXPECT().InvalidateOTP(ctx, user.Email).Return(errors.New("redis down"))
	mockAuthGW.EXPECT().PublishPasswordReset(ctx, gomock.Any()).Return(nil)

	err := uc.ResetPassword(ctx, user.Email, "new-password")

	require.NoError(t, err)
}

// TestForgotPasswordFlow_VerifyConsumesOTP pins down the interplay between
// the two recovery gates: verification consumes the stored record, and a
// later reset checks for a live record on its own. Once verified, the reset
// only goes through if a fresh OTP exists at that moment.
func TestForgotPasswordFlow_VerifyConsumesOTP(t *testing.T) {
	uc, _, mockOTPRepo, _ := setupAuthUCTest(t)
	ctx := context.Background()

	gomock.InOrder(
		mockOTPRepo.EXPECT().ConsumeOTP(ctx, "alice@example.com", "123456").Return(true, nil),
		mockOTPRepo.EXPECT().HasLiveOTP(ctx, "alice@example.com").Return(false, nil),
	)

	require.NoError(t, uc.VerifyForgotPasswordOTP(ctx, "alice@example.com", "123456"))

	err := uc.ResetPassword(ctx, "alice@example.com", "new-password")
	assert.ErrorIs(t, err, auth.ErrNoLiveOTP)
}
