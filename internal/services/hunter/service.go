package hunter

//go:generate mockgen -destination=mock/mock_service.go -package=mockhunter -source=service.go

import (
	"context"
	"sync"

	hunterDomain "github.com/KirkDiggler/raid-bot-discord/internal/domain/hunter"
	apperr "github.com/KirkDiggler/raid-bot-discord/internal/errors"
	"github.com/KirkDiggler/raid-bot-discord/internal/repositories/hunters"
)

// Repository is an alias for the hunter repository interface
type Repository = hunters.Repository

// Service owns hunter profiles: creation, inventory and progression
type Service interface {
	// GetOrCreate returns the hunter's profile, creating a level 1 hunter on first contact
	GetOrCreate(ctx context.Context, userID, guildID string) (*hunterDomain.Profile, error)

	// CommitInventory replaces the persisted inventory
	CommitInventory(ctx context.Context, userID, guildID string, inventory []string) (*hunterDomain.Profile, error)

	// CommitProgression applies an xp and gold delta, levelling up as needed
	CommitProgression(ctx context.Context, userID, guildID string, xp, gold int) (*Progression, error)
}

// Progression is the result of a committed xp/gold delta
type Progression struct {
	Profile      *hunterDomain.Profile
	LevelsGained int
	GoldApplied  int
}

// ServiceConfig holds configuration for the hunter service
type ServiceConfig struct {
	Repository Repository
}

type service struct {
	repository Repository

	// serializes read-modify-write cycles per hunter
	locksMu sync.Mutex
	locks   map[string]*hunterLock
}

type hunterLock struct {
	mu   sync.Mutex
	refs int
}

// NewService creates a new hunter service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	return &service{
		repository: cfg.Repository,
		locks:      make(map[string]*hunterLock),
	}
}

// lock serializes writes to one hunter; the entry is dropped once nobody holds or waits on it
func (s *service) lock(guildID, userID string) func() {
	key := guildID + ":" + userID

	s.locksMu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &hunterLock{}
		s.locks[key] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, key)
		}
		s.locksMu.Unlock()
	}
}

func (s *service) GetOrCreate(ctx context.Context, userID, guildID string) (*hunterDomain.Profile, error) {
	if userID == "" || guildID == "" {
		return nil, apperr.InvalidArgument("user ID and guild ID are required")
	}

	profile, err := s.repository.Get(ctx, guildID, userID)
	if err == nil {
		return profile, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, apperr.Wrapf(err, "failed to get hunter '%s'", userID).
			WithMeta("user_id", userID).
			WithMeta("guild_id", guildID)
	}

	profile = hunterDomain.NewProfile(userID, guildID)
	if err := s.repository.Create(ctx, profile); err != nil {
		// Lost a race with a concurrent first contact
		if apperr.IsAlreadyExists(err) {
			return s.repository.Get(ctx, guildID, userID)
		}
		return nil, apperr.Wrapf(err, "failed to create hunter '%s'", userID).
			WithMeta("user_id", userID).
			WithMeta("guild_id", guildID)
	}

	return profile, nil
}

func (s *service) CommitInventory(ctx context.Context, userID, guildID string, inventory []string) (*hunterDomain.Profile, error) {
	unlock := s.lock(guildID, userID)
	defer unlock()

	profile, err := s.repository.Get(ctx, guildID, userID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to load hunter '%s'", userID)
	}

	profile.Inventory = append([]string{}, inventory...)
	if err := s.repository.Update(ctx, profile); err != nil {
		return nil, apperr.Wrapf(err, "failed to save inventory of hunter '%s'", userID)
	}

	return profile, nil
}

func (s *service) CommitProgression(ctx context.Context, userID, guildID string, xp, gold int) (*Progression, error) {
	unlock := s.lock(guildID, userID)
	defer unlock()

	profile, err := s.repository.Get(ctx, guildID, userID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to load hunter '%s'", userID)
	}

	levels, applied := profile.ApplyProgression(xp, gold)
	if err := s.repository.Update(ctx, profile); err != nil {
		return nil, apperr.Wrapf(err, "failed to save progression of hunter '%s'", userID)
	}

	return &Progression{
		Profile:      profile,
		LevelsGained: levels,
		GoldApplied:  applied,
	}, nil
}
