package constants

// NATS subjects for account lifecycle events
const (
	SubjectUserCreated   = "auth.user.created"
	SubjectPasswordReset = "auth.user.password_reset"
)
