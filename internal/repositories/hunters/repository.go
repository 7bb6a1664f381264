package hunters

//go:generate mockgen -destination=mock/mock_repository.go -package=mockhunters -source=repository.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/raid-bot-discord/internal/domain/hunter"
)

// Repository defines the interface for hunter profile storage
type Repository interface {
	// Create stores a new profile; fails with already exists
	Create(ctx context.Context, profile *hunter.Profile) error

	// Get retrieves the profile of a user in a guild; fails with not found
	Get(ctx context.Context, guildID, userID string) (*hunter.Profile, error)

	// Update replaces an existing profile; fails with not found
	Update(ctx context.Context, profile *hunter.Profile) error

	// ListByGuild retrieves every profile of a guild
	ListByGuild(ctx context.Context, guildID string) ([]*hunter.Profile, error)
}

// TimeProvider stamps CreatedAt/UpdatedAt
type TimeProvider interface {
	Now() time.Time
}

type utcClock struct{}

func (utcClock) Now() time.Time {
	return time.Now().UTC()
}
