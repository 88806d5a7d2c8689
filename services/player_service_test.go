package services_test

import (
	"context"
	"testing"

	"dota2-stats-server/models"
	"dota2-stats-server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlayer(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewPlayerService(db)
	ctx := context.Background()

	player, err := svc.CreatePlayer(ctx, "123", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "123", player.SteamID)
	assert.Equal(t, "Alice", player.Nickname)
	assert.Equal(t, services.DefaultRating, player.Rating)
	assert.Equal(t, 0, player.TotalMatches)
	assert.Equal(t, 0, player.Wins)
	assert.Equal(t, 0, player.Losses)
}

func TestCreatePlayerDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewPlayerService(db)
	ctx := context.Background()

	_, err := svc.CreatePlayer(ctx, "123", "Alice")
	require.NoError(t, err)

	_, err = svc.CreatePlayer(ctx, "123", "Impostor")
	assert.ErrorIs(t, err, services.ErrPlayerExists)
}

func TestCreatePlayerValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewPlayerService(db)
	ctx := context.Background()

	_, err := svc.CreatePlayer(ctx, "", "Alice")
	assert.ErrorIs(t, err, services.ErrInvalidRequest)

	_, err = svc.CreatePlayer(ctx, "123", "")
	assert.ErrorIs(t, err, services.ErrInvalidRequest)
}

func TestGetProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewPlayerService(db)
	ctx := context.Background()

	_, err := svc.CreatePlayer(ctx, "123", "Alice")
	require.NoError(t, err)

	player, err := svc.GetProfile(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "Alice", player.Nickname)

	_, err = svc.GetProfile(ctx, "999999")
	assert.ErrorIs(t, err, services.ErrPlayerNotFound)
}

func TestLeaderboard(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewPlayerService(db)
	ctx := context.Background()

	seed := []models.Player{
		{SteamID: "1", Nickname: "Alice", TotalMatches: 4, Wins: 3, Losses: 1, Rating: 1090},
		{SteamID: "2", Nickname: "Bob", TotalMatches: 2, Wins: 0, Losses: 2, Rating: 940},
		{SteamID: "3", Nickname: "Carol", TotalMatches: 1, Wins: 1, Losses: 0, Rating: 1030},
		// Same rating as Carol: tie must break on steam id ascending.
		{SteamID: "4", Nickname: "Dave", TotalMatches: 3, Wins: 1, Losses: 2, Rating: 1030},
		// Never played: excluded despite the default rating.
		{SteamID: "5", Nickname: "Eve", TotalMatches: 0, Wins: 0, Losses: 0, Rating: 1000},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	entries, err := svc.Leaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, []string{"1", "3", "4", "2"}, []string{
		entries[0].SteamID, entries[1].SteamID, entries[2].SteamID, entries[3].SteamID,
	})
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}

	// 3 wins out of 4 matches.
	assert.Equal(t, 75.0, entries[0].WinRate)
	assert.Equal(t, 0.0, entries[3].WinRate)

	// Ordering is strictly by rating descending.
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Rating, entries[i].Rating)
	}
}

func TestLeaderboardLimits(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewPlayerService(db)
	ctx := context.Background()

	for _, p := range []models.Player{
		{SteamID: "1", Nickname: "A", TotalMatches: 1, Wins: 1, Rating: 1030},
		{SteamID: "2", Nickname: "B", TotalMatches: 1, Wins: 0, Losses: 1, Rating: 970},
	} {
		require.NoError(t, db.Create(&p).Error)
	}

	entries, err := svc.Leaderboard(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "1", entries[0].SteamID)

	// Zero falls back to the default limit instead of returning nothing.
	entries, err = svc.Leaderboard(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
