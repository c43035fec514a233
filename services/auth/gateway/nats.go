package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/inviteflow/auth-service/internal/pkg/constants"
	"github.com/inviteflow/auth-service/internal/pkg/logger"
	"github.com/inviteflow/auth-service/internal/pkg/models"
)

// PublishUserCreated publishes an account creation event
func (g *AuthGW) PublishUserCreated(ctx context.Context, event *models.UserCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal user created event: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectUserCreated, data); err != nil {
		logger.Error("Failed to publish user created event",
			logger.String("user_id", event.UserID),
			logger.Err(err))
		return fmt.Errorf("failed to publish user created event: %w", err)
	}

	logger.Info("Published user created event",
		logger.String("user_id", event.UserID))

	return nil
}

// PublishPasswordReset publishes a password reset event
func (g *AuthGW) PublishPasswordReset(ctx context.Context, event *models.PasswordResetEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal password reset event: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectPasswordReset, data); err != nil {
		logger.Error("Failed to publish password reset event",
			logger.String("user_id", event.UserID),
			logger.Err(err))
		return fmt.Errorf("failed to publish password reset event: %w", err)
	}

	logger.Info("Published password reset event",
		logger.String("user_id", event.UserID))

	return nil
}
