package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/KirkDiggler/raid-bot-discord/internal/domain/raid"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Raid    RaidConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string // Optional: in-memory repositories when empty
}

// RaidConfig holds raid engine configuration
type RaidConfig struct {
	// Seed fixes the random source when set; zero means time seeded
	Seed              int64
	DefaultDifficulty string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Raid: RaidConfig{
			Seed:              getEnvAsInt64OrDefault("RAID_SEED", 0),
			DefaultDifficulty: getEnvOrDefault("RAID_DEFAULT_DIFFICULTY", raid.DefaultDifficulty),
		},
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}
	if !raid.IsDifficulty(cfg.Raid.DefaultDifficulty) {
		return nil, fmt.Errorf("RAID_DEFAULT_DIFFICULTY %q is not one of %v", cfg.Raid.DefaultDifficulty, raid.DifficultyOrder)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
