package cards

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/raid-bot-discord/internal/domain/card"
	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a new Redis-backed card repository.
// Each hunter's collection is a list of JSON encoded cards.
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("Redis client cannot be nil")
	}
	return &redisRepo{client: client}
}

func (r *redisRepo) key(guildID, userID string) string {
	return fmt.Sprintf("cards:%s:%s", guildID, userID)
}

func (r *redisRepo) List(ctx context.Context, guildID, userID string) ([]*card.Card, error) {
	raw, err := r.client.LRange(ctx, r.key(guildID, userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	out := make([]*card.Card, 0, len(raw))
	for _, item := range raw {
		var c card.Card
		if err := json.Unmarshal([]byte(item), &c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal card: %w", err)
		}
		out = append(out, &c)
	}
	return out, nil
}

func (r *redisRepo) Add(ctx context.Context, guildID, userID string, c *card.Card) error {
	if err := validate(guildID, userID, c); err != nil {
		return err
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal card: %w", err)
	}

	if err := r.client.RPush(ctx, r.key(guildID, userID), data).Err(); err != nil {
		return fmt.Errorf("failed to add card: %w", err)
	}
	return nil
}
