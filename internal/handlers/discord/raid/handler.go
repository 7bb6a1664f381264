package raid

import (
	"context"
	"fmt"
	"log"
	"strings"

	raidDomain "github.com/KirkDiggler/raid-bot-discord/internal/domain/raid"
	apperr "github.com/KirkDiggler/raid-bot-discord/internal/errors"
	raidService "github.com/KirkDiggler/raid-bot-discord/internal/services/raid"
	"github.com/bwmarrin/discordgo"
)

// DiscordSession is the part of *discordgo.Session the raid handler uses
type DiscordSession interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponse(interaction *discordgo.Interaction, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Handler serves the /raid command and raid buttons
type Handler struct {
	raidService       raidService.Service
	defaultDifficulty string
}

// HandlerConfig holds configuration for the raid handler
type HandlerConfig struct {
	RaidService       raidService.Service
	DefaultDifficulty string
}

// NewHandler creates a new raid handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.RaidService == nil {
		panic("raid service is required")
	}

	difficulty := cfg.DefaultDifficulty
	if !raidDomain.IsDifficulty(difficulty) {
		difficulty = raidDomain.DefaultDifficulty
	}

	return &Handler{
		raidService:       cfg.RaidService,
		defaultDifficulty: difficulty,
	}
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// HandleOpen opens a lobby in the current channel with the caller as leader
func (h *Handler) HandleOpen(s DiscordSession, i *discordgo.InteractionCreate, difficulty string) error {
	if i.GuildID == "" {
		return respondEphemeral(s, i, "❌ Raids can only be opened in a server.")
	}
	if difficulty == "" {
		difficulty = h.defaultDifficulty
	}

	ctx := context.Background()
	userID := interactionUserID(i)

	view, err := h.raidService.CreateLobby(ctx, i.GuildID, i.ChannelID, userID, difficulty)
	if err != nil {
		return respondError(s, i, "Failed to open raid", err)
	}

	// The leader is always part of their own raid
	joined, err := h.raidService.Join(ctx, view.ID, userID, i.GuildID)
	if err != nil {
		// A lobby without its leader is unreachable; drop it
		if discardErr := h.raidService.Discard(ctx, view.ID); discardErr != nil {
			log.Printf("Raid %s: could not discard leaderless lobby: %v", view.ID, discardErr)
		}
		return respondError(s, i, "Failed to join raid", err)
	}
	if joined.View != nil {
		view = joined.View
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{BuildRaidEmbed(view, fmt.Sprintf("Raid leader: %s", mention(userID)))},
			Components: BuildRaidComponents(view),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to respond with raid lobby: %w", err)
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.Printf("Raid %s: could not fetch lobby message: %v", view.ID, err)
		return nil
	}
	if err := h.raidService.SetMessage(ctx, view.ID, msg.ID); err != nil {
		log.Printf("Raid %s: could not record lobby message: %v", view.ID, err)
	}
	return nil
}

// HandleStatus lists the live raids of the server
func (h *Handler) HandleStatus(s DiscordSession, i *discordgo.InteractionCreate) error {
	views, err := h.raidService.ListByGuild(context.Background(), i.GuildID)
	if err != nil {
		return respondError(s, i, "Failed to list raids", err)
	}

	if len(views) == 0 {
		return respondEphemeral(s, i, "No raids are open. Use `/raid open` to start one.")
	}

	var b strings.Builder
	for _, v := range views {
		fmt.Fprintf(&b, "**%s** · %s · %d hunters", v.DifficultyLabel, v.State, len(v.Players))
		if v.State == raidDomain.StateInProgress {
			fmt.Fprintf(&b, " · round %d/%d", v.Round, v.MaxRounds)
		}
		if v.ChannelID != "" {
			fmt.Fprintf(&b, " · <#%s>", v.ChannelID)
		}
		b.WriteString("\n")
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       "🌀 Open Gates",
				Description: strings.TrimRight(b.String(), "\n"),
				Color:       colorLobby,
			}},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

// HandleButton dispatches a raid button press
func (h *Handler) HandleButton(s DiscordSession, i *discordgo.InteractionCreate, customID string) error {
	action, sessionID, err := ParseCustomID(customID)
	if err != nil {
		return respondEphemeral(s, i, "❌ "+ReasonMessage(raidDomain.ReasonInvalidAction))
	}

	ctx := context.Background()
	userID := interactionUserID(i)

	switch action {
	case ButtonJoin:
		result, err := h.raidService.Join(ctx, sessionID, userID, i.GuildID)
		if err != nil {
			return respondError(s, i, "Failed to join raid", err)
		}
		if !result.OK {
			return respondReason(s, i, result.Reason)
		}
		summary := ""
		if result.Joined {
			summary = fmt.Sprintf("🗡️ %s joined the raid.", mention(userID))
		}
		return respondUpdate(s, i, result.View, summary)

	case ButtonStart:
		result, err := h.raidService.Start(ctx, sessionID, userID)
		if err != nil {
			return respondError(s, i, "Failed to start raid", err)
		}
		if !result.OK {
			return respondReason(s, i, result.Reason)
		}
		return respondUpdate(s, i, result.View, fmt.Sprintf("The gate opens: %s appears!", result.View.Boss.Name))

	case ButtonAttack, ButtonGuard, ButtonSkill, ButtonHeal:
		result, err := h.raidService.PerformAction(ctx, sessionID, userID, raidDomain.Action(action))
		if err != nil {
			return respondError(s, i, "Failed to resolve action", err)
		}
		return h.respondAction(s, i, userID, result)

	case ButtonNext:
		result, err := h.raidService.ForceAdvance(ctx, sessionID, userID)
		if err != nil {
			return respondError(s, i, "Failed to advance round", err)
		}
		return h.respondAction(s, i, userID, result)

	case ButtonLeave:
		return h.handleLeave(s, i, sessionID, userID)

	default:
		return respondReason(s, i, raidDomain.ReasonInvalidAction)
	}
}

func (h *Handler) respondAction(s DiscordSession, i *discordgo.InteractionCreate, userID string, result *raidService.ActionResult) error {
	if !result.OK {
		return respondReason(s, i, result.Reason)
	}
	return respondUpdate(s, i, result.View, ActionSummary(userID, result))
}

// handleLeave closes the raid; only the leader may do it
func (h *Handler) handleLeave(s DiscordSession, i *discordgo.InteractionCreate, sessionID, userID string) error {
	ctx := context.Background()

	view, err := h.raidService.View(ctx, sessionID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return respondReason(s, i, raidDomain.ReasonMissing)
		}
		return respondError(s, i, "Failed to load raid", err)
	}
	if view.OwnerID != userID && view.OwnerID != raidDomain.SystemOwnerID {
		return respondReason(s, i, raidDomain.ReasonOwnerOnly)
	}

	if err := h.raidService.Discard(ctx, sessionID); err != nil {
		return respondError(s, i, "Failed to close raid", err)
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       fmt.Sprintf("🚪 %s closed", view.DifficultyLabel),
				Description: fmt.Sprintf("Closed by %s.", mention(userID)),
				Color:       colorDefeat,
			}},
			Components: []discordgo.MessageComponent{},
		},
	})
}

func respondUpdate(s DiscordSession, i *discordgo.InteractionCreate, view *raidDomain.View, summary string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{BuildRaidEmbed(view, summary)},
			Components: BuildRaidComponents(view),
		},
	})
}

func respondReason(s DiscordSession, i *discordgo.InteractionCreate, reason raidDomain.Reason) error {
	return respondEphemeral(s, i, "❌ "+ReasonMessage(reason))
}

func respondEphemeral(s DiscordSession, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// respondError sends an error response
func respondError(s DiscordSession, i *discordgo.InteractionCreate, message string, err error) error {
	log.Printf("Raid error - %s: %v", message, err)
	return respondEphemeral(s, i, fmt.Sprintf("❌ %s. Please try again.", message))
}
