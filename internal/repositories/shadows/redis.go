package shadows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/raid-bot-discord/internal/domain/shadow"
	apperr "github.com/KirkDiggler/raid-bot-discord/internal/errors"
	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a new Redis-backed shadow repository
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("Redis client cannot be nil")
	}
	return &redisRepo{client: client}
}

func (r *redisRepo) key(guildID, userID string) string {
	return fmt.Sprintf("shadows:%s:%s", guildID, userID)
}

// List reads the army stored as one JSON document
func (r *redisRepo) List(ctx context.Context, guildID, userID string) ([]*shadow.Shadow, error) {
	data, err := r.client.Get(ctx, r.key(guildID, userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []*shadow.Shadow{}, nil
		}
		return nil, fmt.Errorf("failed to get shadows: %w", err)
	}

	var army []*shadow.Shadow
	if err := json.Unmarshal(data, &army); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shadows: %w", err)
	}
	return army, nil
}

func (r *redisRepo) Save(ctx context.Context, guildID, userID string, army []*shadow.Shadow) error {
	if guildID == "" || userID == "" {
		return apperr.InvalidArgument("guild ID and user ID are required")
	}
	if army == nil {
		army = []*shadow.Shadow{}
	}

	data, err := json.Marshal(army)
	if err != nil {
		return fmt.Errorf("failed to marshal shadows: %w", err)
	}

	if err := r.client.Set(ctx, r.key(guildID, userID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save shadows: %w", err)
	}
	return nil
}
