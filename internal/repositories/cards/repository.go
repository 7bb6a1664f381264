package cards

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcards -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/raid-bot-discord/internal/domain/card"
)

// Repository stores the card collection of each hunter
type Repository interface {
	// List returns the owned cards in the order they were obtained
	List(ctx context.Context, guildID, userID string) ([]*card.Card, error)

	// Add appends a card to the collection
	Add(ctx context.Context, guildID, userID string, c *card.Card) error
}
