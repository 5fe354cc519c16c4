package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/authz"
)

func TestRequireOperation_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxRoleKey, "teacher")

	called := false
	handler := RequireOperation(authz.OpGrantCoins)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireOperation_Forbids(t *testing.T) {
	cases := []struct {
		role string
		op   authz.Operation
	}{
		{"student", authz.OpGrantCoins},
		{"teacher", authz.OpAddItem},
		{"admin", authz.OpPurchaseItem},
		{"", authz.OpGrantCoins},
	}

	for _, tc := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if tc.role != "" {
			c.Set(CtxRoleKey, tc.role)
		}

		handler := RequireOperation(tc.op)(func(c echo.Context) error {
			t.Fatalf("role %q must not reach %s", tc.role, tc.op)
			return nil
		})

		_ = handler(c)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("role %q op %s: expected 403, got %d", tc.role, tc.op, rec.Code)
		}
	}
}
