package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/12keith/spelling-bee-backend/internal/tokens"
)

type BearerAuth struct {
	Secret []byte
}

func NewBearerAuth(secret []byte) *BearerAuth {
	return &BearerAuth{Secret: secret}
}

// RequireAuth guards identity-scoped routes. The header is expected as
// "Bearer <token>"; the token is whatever follows the first whitespace.
func (m *BearerAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return echo.NewHTTPError(http.StatusForbidden, "No token provided")
		}

		parts := strings.Fields(header)
		if len(parts) < 2 {
			return echo.NewHTTPError(http.StatusForbidden, "Invalid token format")
		}

		claims, err := tokens.ClaimsFromToken(parts[1], m.Secret)
		if err != nil || claims == nil {
			return echo.NewHTTPError(http.StatusForbidden, "Failed to authenticate token")
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)

		return next(c)
	}
}
