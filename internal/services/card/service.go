package card

//go:generate mockgen -destination=mock/mock_service.go -package=mockcard -source=service.go

import (
	"context"

	"github.com/KirkDiggler/raid-bot-discord/internal/dice"
	cardDomain "github.com/KirkDiggler/raid-bot-discord/internal/domain/card"
	"github.com/KirkDiggler/raid-bot-discord/internal/domain/hunter"
	apperr "github.com/KirkDiggler/raid-bot-discord/internal/errors"
	"github.com/KirkDiggler/raid-bot-discord/internal/repositories/cards"
)

// Service manages card collections
type Service interface {
	// GetBonus sums the power of every card the hunter owns
	GetBonus(ctx context.Context, profile *hunter.Profile) (*cardDomain.Bonus, error)

	// RollUniqueGrant gives the hunter a unique card they do not own yet, with a level scaled chance
	RollUniqueGrant(ctx context.Context, profile *hunter.Profile) (*cardDomain.Grant, error)
}

// ServiceConfig holds configuration for the card service
type ServiceConfig struct {
	Repository cards.Repository
	Roller     dice.Roller
}

type service struct {
	repository cards.Repository
	roller     dice.Roller
}

// NewService creates a new card service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	return &service{
		repository: cfg.Repository,
		roller:     roller,
	}
}

func (s *service) GetBonus(ctx context.Context, profile *hunter.Profile) (*cardDomain.Bonus, error) {
	if profile == nil {
		return nil, apperr.InvalidArgument("profile is required")
	}

	owned, err := s.repository.List(ctx, profile.GuildID, profile.UserID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to load cards of hunter '%s'", profile.UserID)
	}

	bonus := &cardDomain.Bonus{CardCount: len(owned)}
	for _, c := range owned {
		bonus.TotalPower += c.Power
	}
	return bonus, nil
}

func (s *service) RollUniqueGrant(ctx context.Context, profile *hunter.Profile) (*cardDomain.Grant, error) {
	if profile == nil {
		return nil, apperr.InvalidArgument("profile is required")
	}

	if !s.roller.Chance(cardDomain.UniqueChance(profile.Level)) {
		return &cardDomain.Grant{}, nil
	}

	owned, err := s.repository.List(ctx, profile.GuildID, profile.UserID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to load cards of hunter '%s'", profile.UserID)
	}

	have := make(map[string]bool, len(owned))
	for _, c := range owned {
		have[c.ID] = true
	}

	candidates := make([]cardDomain.Card, 0, len(cardDomain.UniqueCatalogue))
	for _, c := range cardDomain.UniqueCatalogue {
		if !have[c.ID] {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return &cardDomain.Grant{}, nil
	}

	picked := candidates[s.roller.Between(0, len(candidates)-1)]
	if err := s.repository.Add(ctx, profile.GuildID, profile.UserID, &picked); err != nil {
		return nil, apperr.Wrapf(err, "failed to grant card '%s'", picked.ID)
	}

	return &cardDomain.Grant{Granted: true, Card: &picked}, nil
}
