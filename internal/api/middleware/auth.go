package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/ports"
)

// Context keys populated by Auth.
const (
	CtxUserKey   = "user"
	CtxUserIDKey = "user_id"
	CtxRoleKey   = "role"
)

// Auth extracts the bearer token, resolves it to a user record, and injects
// the identity into the request context.
func Auth(resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := resolver.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserKey, user)
			c.Set(CtxUserIDKey, user.ID)
			c.Set(CtxRoleKey, string(user.Role))

			return next(c)
		}
	}
}
