package shadows

//go:generate mockgen -destination=mock/mock_repository.go -package=mockshadows -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/raid-bot-discord/internal/domain/shadow"
)

// Repository stores the shadow army of each hunter
type Repository interface {
	// List returns every shadow the hunter owns, empty when none
	List(ctx context.Context, guildID, userID string) ([]*shadow.Shadow, error)

	// Save replaces the hunter's army
	Save(ctx context.Context, guildID, userID string, army []*shadow.Shadow) error
}
