package models

// OTP represents a one-time passcode bound to an email address. Timestamps
// are unix seconds so the Redis consume script can compare them directly.
type OTP struct {
	Email     string `json:"email"`
	Code      string `json:"code"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt int64  `json:"expires_at"`
}

// SendOTPRequest represents a request to issue an OTP
type SendOTPRequest struct {
	Email string `json:"email"`
}

// SignupRequest represents a request to create an account with an OTP
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Password string `json:"password"`
}

// LoginRequest represents a request to authenticate with credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyOTPRequest represents a request to verify a forgot-password OTP
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest represents a request to overwrite a password
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// AuthResponse represents the payload returned after a successful login
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   int64        `json:"expiresAt"`
	User        *UserSummary `json:"user"`
}
