package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/ports"
)

// Bootstrap idempotently seeds the two fixed demo accounts at process start.
// Existing records are left untouched, so repeated startups are safe.
func Bootstrap(ctx context.Context, users ports.UserRepository, logger zerolog.Logger) error {
	for _, seed := range []*domain.User{defaultAdminRecord(), defaultTeacherRecord()} {
		_, err := users.Get(ctx, seed.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("bootstrap: check %s: %w", seed.ID, err)
		}
		if err := users.Save(ctx, seed); err != nil {
			return fmt.Errorf("bootstrap: seed %s: %w", seed.ID, err)
		}
		logger.Info().Str("user_id", seed.ID).Str("role", string(seed.Role)).Msg("default account created")
	}
	return nil
}

func defaultAdminRecord() *domain.User {
	return &domain.User{
		ID:        DefaultAdminID,
		Email:     demoAdminEmail,
		Name:      "System Administrator",
		Role:      domain.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
}

func defaultTeacherRecord() *domain.User {
	return &domain.User{
		ID:        DefaultTeacherID,
		Email:     demoTeacherEmail,
		Name:      "Demo Teacher",
		Role:      domain.RoleTeacher,
		CreatedAt: time.Now().UTC(),
	}
}
