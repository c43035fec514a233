package auth

import (
	"context"

	"github.com/inviteflow/auth-service/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/inviteflow/auth-service/services/auth AuthGW

// AuthGW represents outbound collaborators: the email notifier and the
// lifecycle event publisher.
type AuthGW interface {
	SendOTPEmail(ctx context.Context, email, code string) error
	PublishUserCreated(ctx context.Context, event *models.UserCreatedEvent) error
	PublishPasswordReset(ctx context.Context, event *models.PasswordResetEvent) error
}
