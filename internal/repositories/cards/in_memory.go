package cards

import (
	"context"
	"sync"

	"github.com/KirkDiggler/raid-bot-discord/internal/domain/card"
	apperr "github.com/KirkDiggler/raid-bot-discord/internal/errors"
)

type inMemoryRepository struct {
	mu    sync.RWMutex
	cards map[string][]card.Card
}

// NewInMemoryRepository creates a new in-memory card repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		cards: make(map[string][]card.Card),
	}
}

func (r *inMemoryRepository) List(ctx context.Context, guildID, userID string) ([]*card.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.cards[guildID+":"+userID]
	out := make([]*card.Card, len(stored))
	for i := range stored {
		c := stored[i]
		out[i] = &c
	}
	return out, nil
}

func (r *inMemoryRepository) Add(ctx context.Context, guildID, userID string, c *card.Card) error {
	if err := validate(guildID, userID, c); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := guildID + ":" + userID
	r.cards[key] = append(r.cards[key], *c)
	return nil
}

func validate(guildID, userID string, c *card.Card) error {
	if guildID == "" || userID == "" {
		return apperr.InvalidArgument("guild ID and user ID are required")
	}
	if c == nil || c.ID == "" {
		return apperr.InvalidArgument("card with an ID is required")
	}
	return nil
}
