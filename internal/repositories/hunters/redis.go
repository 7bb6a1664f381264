package hunters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/raid-bot-discord/internal/domain/hunter"
	apperr "github.com/KirkDiggler/raid-bot-discord/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider // Optional, defaults to UTC wall clock
}

type redisRepo struct {
	client redis.UniversalClient
	clock  TimeProvider
}

// NewRedisRepository creates a new Redis-backed hunter repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	clock := cfg.TimeProvider
	if clock == nil {
		clock = utcClock{}
	}

	return &redisRepo{
		client: cfg.Client,
		clock:  clock,
	}
}

// NewRedis creates a new Redis-backed hunter repository with default configuration
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func (r *redisRepo) key(guildID, userID string) string {
	return fmt.Sprintf("hunter:%s:%s", guildID, userID)
}

func (r *redisRepo) guildKey(guildID string) string {
	return fmt.Sprintf("guild:%s:hunters", guildID)
}

// Create stores a new profile
func (r *redisRepo) Create(ctx context.Context, profile *hunter.Profile) error {
	if err := validate(profile); err != nil {
		return err
	}

	key := r.key(profile.GuildID, profile.UserID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check hunter existence: %w", err)
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("hunter '%s' already exists in guild '%s'", profile.UserID, profile.GuildID).
			WithMeta("user_id", profile.UserID).
			WithMeta("guild_id", profile.GuildID)
	}

	now := r.clock.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal hunter: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, r.guildKey(profile.GuildID), profile.UserID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create hunter: %w", err)
	}

	return nil
}

// Get retrieves a profile
func (r *redisRepo) Get(ctx context.Context, guildID, userID string) (*hunter.Profile, error) {
	data, err := r.client.Get(ctx, r.key(guildID, userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFoundf("hunter '%s' not found in guild '%s'", userID, guildID).
				WithMeta("user_id", userID).
				WithMeta("guild_id", guildID)
		}
		return nil, fmt.Errorf("failed to get hunter: %w", err)
	}

	var profile hunter.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hunter: %w", err)
	}
	if profile.Inventory == nil {
		profile.Inventory = []string{}
	}

	return &profile, nil
}

// Update replaces an existing profile
func (r *redisRepo) Update(ctx context.Context, profile *hunter.Profile) error {
	if err := validate(profile); err != nil {
		return err
	}

	key := r.key(profile.GuildID, profile.UserID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check hunter existence: %w", err)
	}
	if exists == 0 {
		return apperr.NotFoundf("hunter '%s' not found in guild '%s'", profile.UserID, profile.GuildID)
	}

	profile.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal hunter: %w", err)
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to update hunter: %w", err)
	}

	return nil
}

// ListByGuild retrieves every profile of a guild
func (r *redisRepo) ListByGuild(ctx context.Context, guildID string) ([]*hunter.Profile, error) {
	userIDs, err := r.client.SMembers(ctx, r.guildKey(guildID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get guild hunters: %w", err)
	}

	profiles := make([]*hunter.Profile, len(userIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range userIDs {
		i, id := i, id
		g.Go(func() error {
			profile, err := r.Get(ctx, guildID, id)
			if err != nil {
				return fmt.Errorf("failed to get hunter %s: %w", id, err)
			}
			profiles[i] = profile
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return profiles, nil
}
