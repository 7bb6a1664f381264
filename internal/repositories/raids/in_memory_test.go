package raids

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/raid-bot-discord/internal/domain/raid"
	apperr "github.com/KirkDiggler/raid-bot-discord/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	session := raid.NewSession("raid-1", "guild-1", "chan-1", "owner", "hard", 5, now)
	require.NoError(t, repo.Create(ctx, session))

	err := repo.Create(ctx, raid.NewSession("raid-1", "guild-1", "chan-1", "owner", "hard", 5, now))
	assert.True(t, apperr.IsAlreadyExists(err))

	got, err := repo.Get(ctx, "raid-1")
	require.NoError(t, err)
	assert.Same(t, session, got)

	require.NoError(t, repo.Delete(ctx, "raid-1"))
	require.NoError(t, repo.Delete(ctx, "raid-1"))

	_, err = repo.Get(ctx, "raid-1")
	assert.True(t, apperr.IsNotFound(err))
}

func TestInMemoryRepository_CreateValidation(t *testing.T) {
	repo := NewInMemoryRepository()

	assert.True(t, apperr.IsInvalidArgument(repo.Create(context.Background(), nil)))
	assert.True(t, apperr.IsInvalidArgument(repo.Create(context.Background(), &raid.Session{})))
}

func TestInMemoryRepository_ListByGuild(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, raid.NewSession("b", "guild-1", "c", "o", "", 4, base.Add(time.Minute))))
	require.NoError(t, repo.Create(ctx, raid.NewSession("a", "guild-1", "c", "o", "", 4, base)))
	require.NoError(t, repo.Create(ctx, raid.NewSession("z", "guild-2", "c", "o", "", 4, base)))

	sessions, err := repo.ListByGuild(ctx, "guild-1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "a", sessions[0].ID)
	assert.Equal(t, "b", sessions[1].ID)
}
