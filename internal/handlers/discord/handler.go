package discord

import (
	"log"
	"strings"

	raidDomain "github.com/KirkDiggler/raid-bot-discord/internal/domain/raid"
	raidHandler "github.com/KirkDiggler/raid-bot-discord/internal/handlers/discord/raid"
	"github.com/KirkDiggler/raid-bot-discord/internal/services"
	"github.com/bwmarrin/discordgo"
)

const (
	commandRaid = "raid"

	subcommandOpen   = "open"
	subcommandStatus = "status"

	optionDifficulty = "difficulty"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider
	raidHandler     *raidHandler.Handler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider   *services.Provider
	DefaultDifficulty string
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ServiceProvider == nil {
		panic("service provider is required")
	}

	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		raidHandler: raidHandler.NewHandler(&raidHandler.HandlerConfig{
			RaidService:       cfg.ServiceProvider.RaidService,
			DefaultDifficulty: cfg.DefaultDifficulty,
		}),
	}
}

// Commands returns the slash commands served by the bot
func Commands() []*discordgo.ApplicationCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(raidDomain.DifficultyOrder))
	for _, key := range raidDomain.DifficultyOrder {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  raidDomain.LookupDifficulty(key).Label,
			Value: key,
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        commandRaid,
			Description: "Cooperative boss raids",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        subcommandOpen,
					Description: "Open a raid gate in this channel",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionDifficulty,
							Description: "Gate rank",
							Required:    false,
							Choices:     choices,
						},
					},
				},
				{
					Name:        subcommandStatus,
					Description: "List the raids open in this server",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range Commands() {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var err error
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		err = h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		err = h.handleComponent(s, i)
	}
	if err != nil {
		log.Printf("Error handling interaction: %v", err)
	}
}

// handleCommand handles slash command interactions
func (h *Handler) handleCommand(s raidHandler.DiscordSession, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if data.Name != commandRaid || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	switch sub.Name {
	case subcommandOpen:
		var difficulty string
		for _, opt := range sub.Options {
			if opt.Name == optionDifficulty {
				difficulty = opt.StringValue()
			}
		}
		return h.raidHandler.HandleOpen(s, i, difficulty)
	case subcommandStatus:
		return h.raidHandler.HandleStatus(s, i)
	}
	return nil
}

// handleComponent handles button interactions; custom IDs are "context:action:data"
func (h *Handler) handleComponent(s raidHandler.DiscordSession, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	if !strings.HasPrefix(customID, raidHandler.CustomIDPrefix+":") {
		log.Printf("Ignoring component with unknown custom ID %q", customID)
		return nil
	}
	return h.raidHandler.HandleButton(s, i, customID)
}
