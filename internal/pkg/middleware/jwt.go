package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/inviteflow/auth-service/internal/pkg/jwt"
	"github.com/inviteflow/auth-service/internal/pkg/models"
	"github.com/inviteflow/auth-service/internal/utils"
)

// ContextKeyUserID is the echo context key under which the authenticated
// user ID is stored.
const ContextKeyUserID = "user_id"

// JWTAuthMiddleware authenticates requests via a bearer token. The failure
// messages distinguish a missing header, a malformed header, an expired
// token and an invalid token.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				if errors.Is(err, jwtpkg.ErrTokenExpired) {
					return utils.UnauthorizedResponse(c, "Token has expired")
				}
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextKeyUserID, claims.UserID)

			return next(c)
		}
	}
}
