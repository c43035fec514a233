package gateway

import (
	"github.com/inviteflow/auth-service/internal/pkg/models"
	natspkg "github.com/inviteflow/auth-service/internal/pkg/nats"
)

// AuthGW implements the outbound gateways: OTP delivery over SMTP and
// lifecycle events over NATS.
type AuthGW struct {
	natsClient *natspkg.Client
	smtpCfg    models.SMTPConfig
}

// NewAuthGW creates a new auth gateway
func NewAuthGW(natsClient *natspkg.Client, smtpCfg models.SMTPConfig) *AuthGW {
	return &AuthGW{
		natsClient: natsClient,
		smtpCfg:    smtpCfg,
	}
}
