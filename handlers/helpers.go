package handlers

import (
	"errors"
	"log"
	"os"
	"strconv"

	"dota2-stats-server/models"
	"dota2-stats-server/services"

	"github.com/gofiber/fiber/v2"
)

// profileMap renders the shared player profile shape. Leaderboard-style
// responses include the computed win rate, the create response does not.
func profileMap(p *models.Player, withWinRate bool) fiber.Map {
	profile := fiber.Map{
		"steamid":       p.SteamID,
		"nickname":      p.Nickname,
		"total_matches": p.TotalMatches,
		"wins":          p.Wins,
		"losses":        p.Losses,
		"rating":        p.Rating,
	}
	if withWinRate {
		profile["win_rate"] = p.WinRate()
	}
	return profile
}

// fail maps service error kinds onto HTTP statuses with the standard
// failure envelope. Unknown errors become a 500 whose detail is hidden
// in production.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrInvalidRequest):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrPlayerNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrPlayerExists):
		status = fiber.StatusConflict
	}

	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Printf("❌ Unhandled service error: %v", err)
		if os.Getenv("APP_ENV") == "production" {
			msg = "Internal server error"
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}

// isNumericID checks the opaque steam id shape the game client sends.
func isNumericID(s string) bool {
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}
