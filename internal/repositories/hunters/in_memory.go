package hunters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/raid-bot-discord/internal/domain/hunter"
	apperr "github.com/KirkDiggler/raid-bot-discord/internal/errors"
)

type inMemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]*hunter.Profile // guildID:userID -> profile
	clock    TimeProvider
}

// NewInMemoryRepository creates a new in-memory hunter repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		profiles: make(map[string]*hunter.Profile),
		clock:    utcClock{},
	}
}

func memKey(guildID, userID string) string {
	return guildID + ":" + userID
}

// Create stores a new profile
func (r *inMemoryRepository) Create(ctx context.Context, profile *hunter.Profile) error {
	if err := validate(profile); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := memKey(profile.GuildID, profile.UserID)
	if _, exists := r.profiles[key]; exists {
		return apperr.AlreadyExistsf("hunter '%s' already exists in guild '%s'", profile.UserID, profile.GuildID)
	}

	now := r.clock.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	// Store a copy to avoid external modifications
	r.profiles[key] = profile.Clone()
	return nil
}

// Get retrieves a profile
func (r *inMemoryRepository) Get(ctx context.Context, guildID, userID string) (*hunter.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, exists := r.profiles[memKey(guildID, userID)]
	if !exists {
		return nil, apperr.NotFoundf("hunter '%s' not found in guild '%s'", userID, guildID)
	}

	return profile.Clone(), nil
}

// Update replaces an existing profile
func (r *inMemoryRepository) Update(ctx context.Context, profile *hunter.Profile) error {
	if err := validate(profile); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := memKey(profile.GuildID, profile.UserID)
	if _, exists := r.profiles[key]; !exists {
		return apperr.NotFoundf("hunter '%s' not found in guild '%s'", profile.UserID, profile.GuildID)
	}

	profile.UpdatedAt = r.clock.Now()
	r.profiles[key] = profile.Clone()
	return nil
}

// ListByGuild retrieves every profile of a guild
func (r *inMemoryRepository) ListByGuild(ctx context.Context, guildID string) ([]*hunter.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*hunter.Profile
	for _, p := range r.profiles {
		if p.GuildID == guildID {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func validate(profile *hunter.Profile) error {
	if profile == nil {
		return apperr.InvalidArgument("profile cannot be nil")
	}
	if profile.UserID == "" {
		return apperr.InvalidArgument("profile user ID is required")
	}
	if profile.GuildID == "" {
		return apperr.InvalidArgument("profile guild ID is required")
	}
	return nil
}
