package gateway

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/inviteflow/auth-service/internal/pkg/logger"
)

// SendOTPEmail delivers the verification code to the recipient over SMTP.
// The caller decides what a delivery failure means for the flow; the stored
// OTP is never rolled back here.
func (g *AuthGW) SendOTPEmail(ctx context.Context, email, code string) error {
	if g.smtpCfg.Host == "" || g.smtpCfg.From == "" {
		return fmt.Errorf("email transport is not configured")
	}

	msg := buildOTPMessage(g.smtpCfg.From, email, code, time.Now())

	addr := fmt.Sprintf("%s:%d", g.smtpCfg.Host, g.smtpCfg.Port)
	var auth smtp.Auth
	if g.smtpCfg.Username != "" {
		auth = smtp.PlainAuth("", g.smtpCfg.Username, g.smtpCfg.Password, g.smtpCfg.Host)
	}

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, g.smtpCfg.From, []string{email}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send OTP email: %w", err)
		}
	case <-ctx.Done():
		return fmt.Errorf("OTP email send cancelled: %w", ctx.Err())
	}

	logger.Info("Sent OTP email",
		logger.String("email", email))

	return nil
}

// buildOTPMessage assembles the raw SMTP message with HTML body
func buildOTPMessage(from, to, code string, generatedAt time.Time) []byte {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString("Subject: Your InviteFlow verification code\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(RenderOTPEmail(code, generatedAt))
	return []byte(b.String())
}
