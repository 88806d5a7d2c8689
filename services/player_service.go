package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"dota2-stats-server/models"

	"gorm.io/gorm"
)

type PlayerService struct {
	DB *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{DB: db}
}

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// LeaderboardEntry is one row of the rating leaderboard.
type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	SteamID      string  `json:"steamid"`
	Nickname     string  `json:"nickname"`
	Rating       int     `json:"rating"`
	TotalMatches int     `json:"total_matches"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"win_rate"`
}

// CreatePlayer inserts a fresh profile with zeroed counters and the
// default rating. A duplicate steam id maps to ErrPlayerExists.
func (s *PlayerService) CreatePlayer(ctx context.Context, steamID, nickname string) (*models.Player, error) {
	if steamID == "" || nickname == "" {
		return nil, fmt.Errorf("%w: steamId and nickname are required", ErrInvalidRequest)
	}

	player := &models.Player{
		SteamID:  steamID,
		Nickname: nickname,
		Rating:   DefaultRating,
	}
	if err := s.DB.WithContext(ctx).Create(player).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: steam id %s", ErrPlayerExists, steamID)
		}
		return nil, err
	}

	log.Printf("✅ Created player %s (%s)", nickname, steamID)
	return player, nil
}

// GetProfile fetches a player row by steam id.
func (s *PlayerService) GetProfile(ctx context.Context, steamID string) (*models.Player, error) {
	var player models.Player
	err := s.DB.WithContext(ctx).Where("steam_id = ?", steamID).First(&player).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: steam id %s", ErrPlayerNotFound, steamID)
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// Leaderboard returns the top players by rating. Only players that
// finished at least one match are eligible. Ties break on steam id
// ascending so the ordering stays reproducible.
func (s *PlayerService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	var players []models.Player
	err := s.DB.WithContext(ctx).
		Where("total_matches > 0").
		Order("rating DESC, steam_id ASC").
		Limit(limit).
		Find(&players).Error
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(players))
	for i := range players {
		p := &players[i]
		entries = append(entries, LeaderboardEntry{
			Rank:         i + 1,
			SteamID:      p.SteamID,
			Nickname:     p.Nickname,
			Rating:       p.Rating,
			TotalMatches: p.TotalMatches,
			Wins:         p.Wins,
			Losses:       p.Losses,
			WinRate:      p.WinRate(),
		})
	}
	return entries, nil
}
