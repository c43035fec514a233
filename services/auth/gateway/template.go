package gateway

import (
	"fmt"
	"time"
)

// RenderOTPEmail renders the verification email body for the given code.
// The generated-at timestamp and the validity note give the recipient
// enough context to spot a stale or unexpected code.
func RenderOTPEmail(code string, generatedAt time.Time) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <style>
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; background-color: #f4f4f4; }
    .email-container { max-width: 600px; margin: 20px auto; background-color: #ffffff; border-radius: 10px; overflow: hidden; }
    .header { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 30px 20px; text-align: center; }
    .content { padding: 40px 30px; text-align: center; }
    .otp-box { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 30px; border-radius: 10px; margin: 30px 0; }
    .otp-code { font-size: 48px; font-weight: 700; letter-spacing: 8px; margin: 20px 0; font-family: 'Courier New', monospace; }
    .validity { font-size: 14px; margin-top: 15px; }
    .timestamp { background-color: #f9f9f9; padding: 15px; border-radius: 8px; margin: 20px 0; font-size: 13px; color: #666; }
    .warning { background-color: #fff3cd; color: #856404; padding: 15px; border-radius: 8px; margin: 20px 0; font-size: 13px; }
    .footer { background-color: #f9f9f9; padding: 20px; text-align: center; font-size: 12px; color: #999; }
  </style>
</head>
<body>
  <div class="email-container">
    <div class="header">
      <h1>InviteFlow</h1>
      <p style="margin: 0; font-size: 14px;">Email Verification</p>
    </div>
    <div class="content">
      <p>Hello,<br>We received a request to verify your email address. Use the one-time passcode below to continue.</p>
      <div class="otp-box">
        <p style="margin: 0 0 10px 0; font-size: 14px;">Your Verification Code</p>
        <div class="otp-code">%s</div>
        <div class="validity">Valid for <strong>5 minutes</strong></div>
      </div>
      <div class="timestamp"><strong>Generated:</strong> %s</div>
      <div class="warning"><strong>Important:</strong> Never share this code with anyone. Our team will never ask for it.</div>
      <p style="margin-top: 30px; font-size: 13px; color: #999;">If you didn't request this code, please ignore this email or contact support.</p>
    </div>
    <div class="footer">
      <p><strong>InviteFlow Security Team</strong></p>
      <p>This is an automated message, please do not reply.</p>
    </div>
  </div>
</body>
</html>`, code, generatedAt.Format("Monday, January 2, 2006 15:04:05"))
}
