package shadows

import (
	"context"
	"sync"

	"github.com/KirkDiggler/raid-bot-discord/internal/domain/shadow"
	apperr "github.com/KirkDiggler/raid-bot-discord/internal/errors"
)

type inMemoryRepository struct {
	mu     sync.RWMutex
	armies map[string][]shadow.Shadow
}

// NewInMemoryRepository creates a new in-memory shadow repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		armies: make(map[string][]shadow.Shadow),
	}
}

func (r *inMemoryRepository) List(ctx context.Context, guildID, userID string) ([]*shadow.Shadow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.armies[guildID+":"+userID]
	out := make([]*shadow.Shadow, len(stored))
	for i := range stored {
		s := stored[i]
		out[i] = &s
	}
	return out, nil
}

func (r *inMemoryRepository) Save(ctx context.Context, guildID, userID string, army []*shadow.Shadow) error {
	if guildID == "" || userID == "" {
		return apperr.InvalidArgument("guild ID and user ID are required")
	}

	stored := make([]shadow.Shadow, 0, len(army))
	for _, s := range army {
		if s != nil {
			stored = append(stored, *s)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.armies[guildID+":"+userID] = stored
	return nil
}
