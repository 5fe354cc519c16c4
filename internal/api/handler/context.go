package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/api/middleware"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
)

// ctxActor extracts the authenticated user injected by the Auth middleware.
// Presence of the record proves the middleware ran; a missing record on a
// protected route means the route was wired without Auth, so fail closed.
func ctxActor(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.CtxUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}

// bindAndValidate decodes the JSON body and runs struct validation,
// normalizing both failure modes to a 400.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
