package raids

//go:generate mockgen -destination=mock/mock_repository.go -package=mockraids -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/raid-bot-discord/internal/domain/raid"
)

// Repository is the registry of live raid sessions.
// Sessions are held by pointer; callers serialize access per session.
type Repository interface {
	// Create registers a new session; fails with already exists
	Create(ctx context.Context, session *raid.Session) error

	// Get retrieves a session by ID; fails with not found
	Get(ctx context.Context, id string) (*raid.Session, error)

	// Delete removes a session, a missing ID is not an error
	Delete(ctx context.Context, id string) error

	// ListByGuild retrieves the sessions of a guild ordered by creation
	ListByGuild(ctx context.Context, guildID string) ([]*raid.Session, error)
}
