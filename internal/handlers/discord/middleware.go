package discord

import (
	"fmt"
	"log"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
)

// InteractionFunc is the shape of a discordgo interaction handler
type InteractionFunc func(*discordgo.Session, *discordgo.InteractionCreate)

// RecoverMiddleware keeps a panicking interaction from taking the gateway loop down
func RecoverMiddleware(handlerName string, handler InteractionFunc) InteractionFunc {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in %s handler: %v\nStack trace:\n%s", handlerName, r, debug.Stack())
				if s != nil && i != nil && i.Interaction != nil {
					respondWithError(s, i, "The raid engine hit an unexpected error.")
				}
			}
		}()

		handler(s, i)
	}
}

// respondWithError tries a fresh response first, then a followup if the interaction was already answered
func respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	responses := []func() error{
		func() error {
			return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: fmt.Sprintf("❌ %s", message),
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			})
		},
		func() error {
			_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
				Content: fmt.Sprintf("❌ %s", message),
				Flags:   discordgo.MessageFlagsEphemeral,
			})
			return err
		},
	}

	for _, respond := range responses {
		if err := respond(); err == nil {
			return
		}
	}

	log.Printf("Failed to send error response to user: %s", message)
}
