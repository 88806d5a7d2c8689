package models

import (
	"math"
	"time"
)

// Player holds the aggregate stats row for one Dota 2 account.
// Invariant: Wins + Losses == TotalMatches; Rating only moves inside a
// match-completion transaction.
type Player struct {
	SteamID      string `gorm:"primaryKey;type:varchar(32)" json:"steamid"`
	Nickname     string `gorm:"not null" json:"nickname"`
	TotalMatches int    `gorm:"not null;default:0" json:"total_matches"`
	Wins         int    `gorm:"not null;default:0" json:"wins"`
	Losses       int    `gorm:"not null;default:0" json:"losses"`
	Rating       int    `gorm:"not null;default:1000" json:"rating"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// WinRate returns the win percentage rounded to one decimal place,
// or 0 for players without any matches.
func (p *Player) WinRate() float64 {
	if p.TotalMatches == 0 {
		return 0
	}
	return math.Round(float64(p.Wins)/float64(p.TotalMatches)*1000) / 10
}
