package models

import "time"

// Match stores the metadata of a completed match. The first completion
// report wins: later reports with the same id leave the row untouched.
type Match struct {
	MatchID    string `gorm:"primaryKey;type:varchar(64)" json:"match_id"`
	GameMode   int    `gorm:"not null;default:0" json:"game_mode"`
	Difficulty int    `gorm:"not null;default:1" json:"difficulty"`
	Duration   int    `gorm:"not null;default:0" json:"duration"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
