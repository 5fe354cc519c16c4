package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/api/middleware"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/ports"
)

type stubCatalogService struct {
	listFn func(ctx context.Context, includeUnavailable bool) ([]*domain.Item, error)
	addFn  func(ctx context.Context, actorID string, in ports.AddItemInput) (*domain.Item, error)
	setFn  func(ctx context.Context, actorID, itemID string, available bool) (*domain.Item, error)
}

func (s *stubCatalogService) ListItems(ctx context.Context, includeUnavailable bool) ([]*domain.Item, error) {
	return s.listFn(ctx, includeUnavailable)
}

func (s *stubCatalogService) AddItem(ctx context.Context, actorID string, in ports.AddItemInput) (*domain.Item, error) {
	return s.addFn(ctx, actorID, in)
}

func (s *stubCatalogService) SetAvailability(ctx context.Context, actorID, itemID string, available bool) (*domain.Item, error) {
	return s.setFn(ctx, actorID, itemID, available)
}

func TestCatalogHandler_ListItems_FiltersByDefault(t *testing.T) {
	stub := &stubCatalogService{
		listFn: func(ctx context.Context, includeUnavailable bool) ([]*domain.Item, error) {
			if includeUnavailable {
				t.Fatal("default listing must exclude unavailable items")
			}
			return []*domain.Item{{ID: "i1", Name: "Sticker", Price: 5, Available: true}}, nil
		},
	}
	h := NewCatalogHandler(stub)

	c, rec := jsonContext(http.MethodGet, "/items", "")
	if err := h.ListItems(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Items []domain.Item `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != "i1" {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
}

func TestCatalogHandler_ListItems_AllQuery(t *testing.T) {
	stub := &stubCatalogService{
		listFn: func(ctx context.Context, includeUnavailable bool) ([]*domain.Item, error) {
			if !includeUnavailable {
				t.Fatal("?all=true must include unavailable items")
			}
			return nil, nil
		},
	}
	h := NewCatalogHandler(stub)

	c, _ := jsonContext(http.MethodGet, "/items?all=true", "")
	if err := h.ListItems(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestCatalogHandler_AddItem_DefaultsAvailable(t *testing.T) {
	stub := &stubCatalogService{
		addFn: func(ctx context.Context, actorID string, in ports.AddItemInput) (*domain.Item, error) {
			if actorID != "a1" {
				t.Fatalf("unexpected actor: %s", actorID)
			}
			if !in.Available {
				t.Fatal("omitted available field must default to true")
			}
			return &domain.Item{ID: "i1", Name: in.Name, Price: in.Price, Available: in.Available}, nil
		},
	}
	h := NewCatalogHandler(stub)

	c, rec := jsonContext(http.MethodPost, "/add-item", `{"name":"Sticker","price":5,"description":"shiny"}`)
	c.Set(middleware.CtxUserKey, &domain.User{ID: "a1", Role: domain.RoleAdmin})

	if err := h.AddItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCatalogHandler_AddItem_ExplicitUnavailable(t *testing.T) {
	stub := &stubCatalogService{
		addFn: func(ctx context.Context, actorID string, in ports.AddItemInput) (*domain.Item, error) {
			if in.Available {
				t.Fatal("explicit available=false must be honored")
			}
			return &domain.Item{ID: "i1"}, nil
		},
	}
	h := NewCatalogHandler(stub)

	c, _ := jsonContext(http.MethodPost, "/add-item", `{"name":"Sticker","price":5,"available":false}`)
	c.Set(middleware.CtxUserKey, &domain.User{ID: "a1", Role: domain.RoleAdmin})

	if err := h.AddItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestCatalogHandler_AddItem_RejectsBadPrice(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{
		addFn: func(ctx context.Context, actorID string, in ports.AddItemInput) (*domain.Item, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	})

	for _, body := range []string{`{"name":"X","price":0}`, `{"name":"X","price":-3}`, `{"price":5}`} {
		c, _ := jsonContext(http.MethodPost, "/add-item", body)
		c.Set(middleware.CtxUserKey, &domain.User{ID: "a1", Role: domain.RoleAdmin})

		err := h.AddItem(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400 HTTPError, got %v", body, err)
		}
	}
}

func TestCatalogHandler_SetAvailability(t *testing.T) {
	stub := &stubCatalogService{
		setFn: func(ctx context.Context, actorID, itemID string, available bool) (*domain.Item, error) {
			if itemID != "i1" || available {
				t.Fatalf("unexpected args: %s %v", itemID, available)
			}
			return &domain.Item{ID: itemID, Available: available}, nil
		},
	}
	h := NewCatalogHandler(stub)

	c, rec := jsonContext(http.MethodPut, "/items/i1/availability", `{"available":false}`)
	c.SetParamNames("id")
	c.SetParamValues("i1")
	c.Set(middleware.CtxUserKey, &domain.User{ID: "a1", Role: domain.RoleAdmin})

	if err := h.SetAvailability(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCatalogHandler_SetAvailability_RequiresFlag(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{
		setFn: func(ctx context.Context, actorID, itemID string, available bool) (*domain.Item, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	})

	c, _ := jsonContext(http.MethodPut, "/items/i1/availability", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("i1")
	c.Set(middleware.CtxUserKey, &domain.User{ID: "a1", Role: domain.RoleAdmin})

	err := h.SetAvailability(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
