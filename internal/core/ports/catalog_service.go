package ports

import (
	"context"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
)

// AddItemInput carries the fields for catalog item creation.
type AddItemInput struct {
	Name        string
	Price       int
	Description string
	Available   bool
}

// CatalogService manages item availability and pricing.
type CatalogService interface {
	// ListItems returns catalog items in creation order; unavailable items
	// are filtered out unless includeUnavailable is set.
	ListItems(ctx context.Context, includeUnavailable bool) ([]*domain.Item, error)

	// AddItem creates a catalog entry. Admin only; price must be >= 1.
	AddItem(ctx context.Context, actorID string, in AddItemInput) (*domain.Item, error)

	// SetAvailability toggles whether an item can be purchased. Admin only.
	SetAvailability(ctx context.Context, actorID, itemID string, available bool) (*domain.Item, error)
}
