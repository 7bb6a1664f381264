package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/raid-bot-discord/internal/config"
	"github.com/KirkDiggler/raid-bot-discord/internal/dice"
	"github.com/KirkDiggler/raid-bot-discord/internal/handlers/discord"
	"github.com/KirkDiggler/raid-bot-discord/internal/repositories/cards"
	"github.com/KirkDiggler/raid-bot-discord/internal/repositories/hunters"
	"github.com/KirkDiggler/raid-bot-discord/internal/repositories/shadows"
	"github.com/KirkDiggler/raid-bot-discord/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	providerConfig := &services.ProviderConfig{}

	if cfg.Raid.Seed != 0 {
		log.Printf("Using seeded dice (seed %d)", cfg.Raid.Seed)
		providerConfig.Roller = dice.NewSeededRoller(cfg.Raid.Seed)
	}

	// Keep Redis client for cleanup
	redisClient := connectRedis(cfg.Redis.URL)
	if redisClient != nil {
		providerConfig.HunterRepository = hunters.NewRedis(redisClient)
		providerConfig.ShadowRepository = shadows.NewRedis(redisClient)
		providerConfig.CardRepository = cards.NewRedis(redisClient)
		log.Println("Using Redis for hunter persistence")
	}

	serviceProvider := services.NewProvider(providerConfig)

	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider:   serviceProvider,
		DefaultDifficulty: cfg.Raid.DefaultDifficulty,
	})

	dg.AddHandler(discord.RecoverMiddleware("interaction", handler.HandleInteraction))

	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if clientErr := dg.Close(); clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Raid bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// connectRedis returns nil when url is empty or Redis cannot be reached
func connectRedis(url string) *redis.Client {
	if url == "" {
		log.Println("No REDIS_URL found, using in-memory repositories")
		return nil
	}

	log.Println("Connecting to Redis")
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory repositories")
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory repositories")
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}
