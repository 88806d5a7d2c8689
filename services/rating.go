package services

// Rating constants. The delta is fixed magnitude: no opponent skill,
// streaks or duration weighting.
const (
	DefaultRating   = 1000
	WinRatingDelta  = 30
	LossRatingDelta = -30
)

// RatingDelta returns the rating adjustment for a single match outcome.
// It is called exactly once per completion and its result is both stored
// on the PlayerMatch row and added to the player's running rating.
func RatingDelta(win bool) int {
	if win {
		return WinRatingDelta
	}
	return LossRatingDelta
}
