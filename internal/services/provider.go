package services

import (
	"github.com/KirkDiggler/raid-bot-discord/internal/dice"
	"github.com/KirkDiggler/raid-bot-discord/internal/repositories/cards"
	"github.com/KirkDiggler/raid-bot-discord/internal/repositories/hunters"
	"github.com/KirkDiggler/raid-bot-discord/internal/repositories/raids"
	"github.com/KirkDiggler/raid-bot-discord/internal/repositories/shadows"
	cardService "github.com/KirkDiggler/raid-bot-discord/internal/services/card"
	hunterService "github.com/KirkDiggler/raid-bot-discord/internal/services/hunter"
	raidService "github.com/KirkDiggler/raid-bot-discord/internal/services/raid"
	shadowService "github.com/KirkDiggler/raid-bot-discord/internal/services/shadow"
	"github.com/KirkDiggler/raid-bot-discord/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	HunterService hunterService.Service
	ShadowService shadowService.Service
	CardService   cardService.Service
	RaidService   raidService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	HunterRepository hunters.Repository
	ShadowRepository shadows.Repository
	CardRepository   cards.Repository
	RaidRepository   raids.Repository
	Roller           dice.Roller
	UUIDGenerator    uuid.Generator
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	hunterRepo := cfg.HunterRepository
	if hunterRepo == nil {
		hunterRepo = hunters.NewInMemoryRepository()
	}

	shadowRepo := cfg.ShadowRepository
	if shadowRepo == nil {
		shadowRepo = shadows.NewInMemoryRepository()
	}

	cardRepo := cfg.CardRepository
	if cardRepo == nil {
		cardRepo = cards.NewInMemoryRepository()
	}

	// Live raids never leave the process
	raidRepo := cfg.RaidRepository
	if raidRepo == nil {
		raidRepo = raids.NewInMemoryRepository()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	uuidGen := cfg.UUIDGenerator
	if uuidGen == nil {
		uuidGen = uuid.NewGoogleUUIDGenerator()
	}

	hunterSvc := hunterService.NewService(&hunterService.ServiceConfig{
		Repository: hunterRepo,
	})

	shadowSvc := shadowService.NewService(&shadowService.ServiceConfig{
		Repository: shadowRepo,
	})

	cardSvc := cardService.NewService(&cardService.ServiceConfig{
		Repository: cardRepo,
		Roller:     roller,
	})

	raidSvc := raidService.NewService(&raidService.ServiceConfig{
		Repository:    raidRepo,
		HunterService: hunterSvc,
		ShadowService: shadowSvc,
		CardService:   cardSvc,
		Roller:        roller,
		UUIDGenerator: uuidGen,
	})

	return &Provider{
		HunterService: hunterSvc,
		ShadowService: shadowSvc,
		CardService:   cardSvc,
		RaidService:   raidSvc,
	}
}
