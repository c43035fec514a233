package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inviteflow/auth-service/internal/pkg/models"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60, // minutes
		Issuer:     "inviteflow-test",
	}
}

func TestGenerateToken(t *testing.T) {
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, getTestConfig())

	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())
	assert.LessOrEqual(t, expiresAt, time.Now().Add(61*time.Minute).Unix())
}

func TestValidateToken_Success(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.New()

	tokenString, _, err := GenerateToken(userID, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, cfg.Secret)

	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()

	// Sign a token whose expiry is already in the past
	claims := Claims{
		UserID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Minute)),
			Issuer:    cfg.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, cfg.Secret)

	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := getTestConfig()

	tokenString, _, err := GenerateToken(uuid.New(), cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "a-different-secret")

	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := ValidateToken("not-a-jwt-at-all", getTestConfig().Secret)

	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_MissingUserID(t *testing.T) {
	cfg := getTestConfig()

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		Issuer:    cfg.Issuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, cfg.Secret)

	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_ExpiredDistinctFromInvalid(t *testing.T) {
	// The two failure modes must stay distinguishable for callers
	assert.NotErrorIs(t, ErrTokenExpired, ErrTokenInvalid)
}
