package shadow

//go:generate mockgen -destination=mock/mock_service.go -package=mockshadow -source=service.go

import (
	"context"

	shadowDomain "github.com/KirkDiggler/raid-bot-discord/internal/domain/shadow"
	apperr "github.com/KirkDiggler/raid-bot-discord/internal/errors"
	"github.com/KirkDiggler/raid-bot-discord/internal/repositories/shadows"
)

// Service exposes a hunter's shadow army
type Service interface {
	// GetEquipped returns the shadows that fight alongside the hunter, at most MaxEquipped
	GetEquipped(ctx context.Context, userID, guildID string) ([]*shadowDomain.Shadow, error)
}

// ServiceConfig holds configuration for the shadow service
type ServiceConfig struct {
	Repository shadows.Repository
}

type service struct {
	repository shadows.Repository
}

// NewService creates a new shadow service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	return &service{repository: cfg.Repository}
}

func (s *service) GetEquipped(ctx context.Context, userID, guildID string) ([]*shadowDomain.Shadow, error) {
	army, err := s.repository.List(ctx, guildID, userID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to load shadows of hunter '%s'", userID).
			WithMeta("user_id", userID)
	}

	equipped := make([]*shadowDomain.Shadow, 0, shadowDomain.MaxEquipped)
	for _, sh := range army {
		if sh == nil || !sh.Equipped {
			continue
		}
		equipped = append(equipped, sh)
		if len(equipped) == shadowDomain.MaxEquipped {
			break
		}
	}
	return equipped, nil
}
