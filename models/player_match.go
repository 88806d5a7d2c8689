package models

import "time"

// PlayerMatch is the per-player outcome of a single match. Rows are
// append-only and never updated after insert.
type PlayerMatch struct {
	ID          string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	SteamID     string `gorm:"index;not null" json:"steam_id"`
	MatchID     string `gorm:"index;not null" json:"match_id"`
	HeroName    string `json:"hero_name"`
	KillsCreeps int    `gorm:"not null;default:0" json:"kills_creeps"`
	Deaths      int    `gorm:"not null;default:0" json:"deaths"`
	Gold        int    `gorm:"not null;default:0" json:"gold"`
	Level       int    `gorm:"not null;default:1" json:"level"`
	Win         bool   `gorm:"not null" json:"win"`

	// RatingChange records the delta applied to the player's rating for
	// this match so history stays auditable even if the formula changes.
	RatingChange int `gorm:"not null" json:"rating_change"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
