package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderOTPEmail(t *testing.T) {
	generatedAt := time.Date(2026, time.March, 9, 14, 30, 5, 0, time.UTC)

	body := RenderOTPEmail("428613", generatedAt)

	assert.Contains(t, body, "428613")
	assert.Contains(t, body, "Valid for <strong>5 minutes</strong>")
	assert.Contains(t, body, "Monday, March 9, 2026 14:30:05")
	assert.Contains(t, body, "InviteFlow")
	// The Sprintf escapes must not leak into the rendered CSS
	assert.NotContains(t, body, "%%")
	assert.Contains(t, body, "linear-gradient(135deg, #667eea 0%, #764ba2 100%)")
}
