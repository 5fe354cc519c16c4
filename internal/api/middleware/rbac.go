package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/authz"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
)

// RequireOperation rejects callers whose role may not perform the operation,
// according to the authorization gate. Services re-check the same table, so
// this is an early exit, not the only line of defense.
func RequireOperation(op authz.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRoleKey).(string)
			if !authz.CanPerform(domain.Role(role), op) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
