package auth

import "errors"

// Domain errors surfaced by the auth flows. Handlers translate these into
// HTTP status codes with errors.Is.
var (
	// ErrInvalidOTP is returned when a submitted OTP does not match a live
	// record for the email.
	ErrInvalidOTP = errors.New("invalid or expired OTP")

	// ErrNoLiveOTP is returned by ResetPassword when no unexpired OTP record
	// exists for the email.
	ErrNoLiveOTP = errors.New("no live OTP for email")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so login failures are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDuplicateEmail is returned when signup hits the store-level email
	// uniqueness constraint.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUserNotFound is returned when no user record exists for the given
	// email or ID.
	ErrUserNotFound = errors.New("user not found")
)
