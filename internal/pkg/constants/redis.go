package constants

// Redis key formats
const (
	// KeyAuthOTP holds the single live OTP record for an email address.
	// Format: auth:otp:{email}
	KeyAuthOTP = "auth:otp:%s"
)
