package services

import (
	"context"
	"fmt"
	"log"

	"dota2-stats-server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FinishMatchInput is the normalized match-completion report sent by the
// game client when a match ends.
type FinishMatchInput struct {
	MatchID     string
	GameMode    int
	Difficulty  int
	Duration    int
	SteamID     string
	HeroName    string
	KillsCreeps int
	Deaths      int
	Gold        int
	Level       int
	Win         bool
}

// MatchResult carries the applied delta plus the player row re-read after
// the update, for the response envelope.
type MatchResult struct {
	RatingChange int
	Player       *models.Player
}

type MatchService struct {
	DB *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{DB: db}
}

// FinishMatch durably records a completed match for one player: the match
// metadata (first writer wins), the per-player stats row and the aggregate
// counter update all land in a single transaction or not at all.
//
// Repeated reports for the same (player, match) pair are NOT deduplicated
// and apply the rating delta again; callers must guard against
// resubmission. Only the match metadata itself is idempotent.
func (s *MatchService) FinishMatch(ctx context.Context, in FinishMatchInput) (*MatchResult, error) {
	if in.MatchID == "" || in.SteamID == "" {
		return nil, fmt.Errorf("%w: match_id and player_info.SteamID are required", ErrInvalidRequest)
	}
	if in.Difficulty < 1 {
		in.Difficulty = 1
	}
	if in.Level < 1 {
		in.Level = 1
	}

	ratingChange := RatingDelta(in.Win)

	var updated models.Player
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Match metadata is immutable after the first report.
		match := models.Match{
			MatchID:    in.MatchID,
			GameMode:   in.GameMode,
			Difficulty: in.Difficulty,
			Duration:   in.Duration,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&match).Error; err != nil {
			return err
		}

		record := models.PlayerMatch{
			ID:           uuid.NewString(),
			SteamID:      in.SteamID,
			MatchID:      in.MatchID,
			HeroName:     in.HeroName,
			KillsCreeps:  in.KillsCreeps,
			Deaths:       in.Deaths,
			Gold:         in.Gold,
			Level:        in.Level,
			Win:          in.Win,
			RatingChange: ratingChange,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		if err := applyRatingUpdate(tx, in.SteamID, in.Win, ratingChange); err != nil {
			return err
		}

		return tx.Where("steam_id = ?", in.SteamID).First(&updated).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("🏆 Match %s finished for %s: rating %+d, now %d", in.MatchID, in.SteamID, ratingChange, updated.Rating)
	return &MatchResult{RatingChange: ratingChange, Player: &updated}, nil
}

// FinishMatchSimple applies the aggregate counter update only, for callers
// that cannot supply full match metadata. No Match or PlayerMatch rows are
// written; the rating arithmetic is identical to FinishMatch.
func (s *MatchService) FinishMatchSimple(ctx context.Context, steamID string, win bool) (*MatchResult, error) {
	if steamID == "" {
		return nil, fmt.Errorf("%w: player_info.SteamID is required", ErrInvalidRequest)
	}

	ratingChange := RatingDelta(win)

	db := s.DB.WithContext(ctx)
	if err := applyRatingUpdate(db, steamID, win, ratingChange); err != nil {
		return nil, err
	}

	var updated models.Player
	if err := db.Where("steam_id = ?", steamID).First(&updated).Error; err != nil {
		return nil, err
	}

	log.Printf("🏆 Simple match finished for %s: rating %+d, now %d", steamID, ratingChange, updated.Rating)
	return &MatchResult{RatingChange: ratingChange, Player: &updated}, nil
}

// applyRatingUpdate bumps the aggregate counters in one statement so the
// row lock on players serializes concurrent reports for the same player.
// Zero affected rows means the player was never created.
func applyRatingUpdate(tx *gorm.DB, steamID string, win bool, ratingChange int) error {
	winInc, lossInc := 0, 1
	if win {
		winInc, lossInc = 1, 0
	}

	res := tx.Model(&models.Player{}).
		Where("steam_id = ?", steamID).
		Updates(map[string]interface{}{
			"total_matches": gorm.Expr("total_matches + 1"),
			"wins":          gorm.Expr("wins + ?", winInc),
			"losses":        gorm.Expr("losses + ?", lossInc),
			"rating":        gorm.Expr("rating + ?", ratingChange),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: steam id %s", ErrPlayerNotFound, steamID)
	}
	return nil
}
