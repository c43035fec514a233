package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/inviteflow/auth-service/internal/pkg/jwt"
	"github.com/inviteflow/auth-service/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "middleware-test-secret",
		Expiration: 60,
		Issuer:     "inviteflow-test",
	}
}

func runMiddleware(t *testing.T, cfg models.JWTConfig, authHeader string) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/get-user", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	}

	err := JWTAuthMiddleware(cfg)(next)(c)
	require.NoError(t, err)

	return rec, nextCalled
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	msg, _ := response["error"].(string)
	return msg
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	rec, nextCalled := runMiddleware(t, testJWTConfig(), "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization header is required", errorMessage(t, rec))
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	rec, nextCalled := runMiddleware(t, testJWTConfig(), "Basic abcdef")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid authorization format", errorMessage(t, rec))
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()

	claims := jwtpkg.Claims{
		UserID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Minute)),
			Issuer:    cfg.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	rec, nextCalled := runMiddleware(t, cfg, "Bearer "+tokenString)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token has expired", errorMessage(t, rec))
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	rec, nextCalled := runMiddleware(t, testJWTConfig(), "Bearer garbage")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", errorMessage(t, rec))
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	tokenString, _, err := jwtpkg.GenerateToken(userID, cfg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/get-user", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUserID interface{}
	next := func(c echo.Context) error {
		gotUserID = c.Get(ContextKeyUserID)
		return c.NoContent(http.StatusOK)
	}

	err = JWTAuthMiddleware(cfg)(next)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), gotUserID)
}
