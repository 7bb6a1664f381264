package services_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/raid-bot-discord/internal/dice"
	"github.com/KirkDiggler/raid-bot-discord/internal/domain/raid"
	"github.com/KirkDiggler/raid-bot-discord/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Drives a full raid through the wired in-memory stack
func TestProvider_EndToEnd(t *testing.T) {
	ctx := context.Background()
	provider := services.NewProvider(&services.ProviderConfig{
		Roller: dice.NewSeededRoller(7),
	})

	lobby, err := provider.RaidService.CreateLobby(ctx, "guild-1", "chan-1", "owner", "easy")
	require.NoError(t, err)

	for _, u := range []string{"owner", "friend"} {
		joined, err := provider.RaidService.Join(ctx, lobby.ID, u, "guild-1")
		require.NoError(t, err)
		require.True(t, joined.OK)
	}

	started, err := provider.RaidService.Start(ctx, lobby.ID, "owner")
	require.NoError(t, err)
	require.True(t, started.OK)

	var last *raid.View
	for i := 0; i < raid.MaxRoundsCap+1; i++ {
		result, err := provider.RaidService.ForceAdvance(ctx, lobby.ID, "owner")
		require.NoError(t, err)
		last = result.View
		if result.Ended || !result.OK {
			break
		}
	}

	require.NotNil(t, last)
	assert.Equal(t, raid.StateEnded, last.State)
	assert.False(t, last.Won)
	require.Len(t, last.Rewards, 2)
	for _, r := range last.Rewards {
		assert.True(t, r.Committed)
		assert.False(t, r.Alive)
		assert.LessOrEqual(t, r.Gold, 0)
	}

	profile, err := provider.HunterService.GetOrCreate(ctx, "owner", "guild-1")
	require.NoError(t, err)
	assert.Less(t, profile.Gold, 100)
}
