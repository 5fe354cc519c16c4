package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/authz"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/ports"
)

// CatalogService manages the item catalog.
type CatalogService struct {
	users  ports.UserRepository
	items  ports.ItemRepository
	logger zerolog.Logger
}

func NewCatalogService(users ports.UserRepository, items ports.ItemRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{users: users, items: items, logger: logger}
}

// ListItems returns catalog items in creation order. By default only
// available items are returned; includeUnavailable exposes the full catalog.
func (s *CatalogService) ListItems(ctx context.Context, includeUnavailable bool) ([]*domain.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if includeUnavailable {
		return items, nil
	}
	available := make([]*domain.Item, 0, len(items))
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		}
	}
	return available, nil
}

// AddItem creates a catalog entry. Admin only.
func (s *CatalogService) AddItem(ctx context.Context, actorID string, in ports.AddItemInput) (*domain.Item, error) {
	actor, err := s.users.Get(ctx, actorID)
	if err != nil {
		return nil, domain.ErrNotAuthorized
	}
	if !authz.CanPerform(actor.Role, authz.OpAddItem) {
		return nil, domain.ErrNotAuthorized
	}
	if in.Price < 1 {
		return nil, domain.ErrInvalidPrice
	}

	item := &domain.Item{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Available:   in.Available,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.items.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}

	s.logger.Info().Str("item_id", item.ID).Str("name", item.Name).Int("price", item.Price).Msg("item added")
	return item, nil
}

// SetAvailability toggles whether an item can be purchased. Admin only.
func (s *CatalogService) SetAvailability(ctx context.Context, actorID, itemID string, available bool) (*domain.Item, error) {
	actor, err := s.users.Get(ctx, actorID)
	if err != nil {
		return nil, domain.ErrNotAuthorized
	}
	if !authz.CanPerform(actor.Role, authz.OpSetAvailability) {
		return nil, domain.ErrNotAuthorized
	}

	item, err := s.items.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	item.Available = available
	if err := s.items.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("set availability: %w", err)
	}

	s.logger.Info().Str("item_id", item.ID).Bool("available", available).Msg("item availability changed")
	return item, nil
}
