package handlers

import (
	"fmt"

	"dota2-stats-server/middleware"
	"dota2-stats-server/services"

	"github.com/gofiber/fiber/v2"
)

// playerInfoRequest mirrors the nested player_info object the game client
// sends on match completion.
type playerInfoRequest struct {
	SteamID     string `json:"SteamID"`
	Win         bool   `json:"win"`
	Duration    int    `json:"duration"`
	KillsCreeps int    `json:"kills_creeps"`
	Deaths      int    `json:"deaths"`
	Gold        int    `json:"gold"`
	Level       int    `json:"level"`
	HeroName    string `json:"heroname"`
}

func SetupMatchRoutes(app *fiber.App, matchService *services.MatchService) {
	api := app.Group("/api")
	gameKey := middleware.GameKeyAuth()

	api.Post("/match/finish", gameKey, func(c *fiber.Ctx) error {
		var req struct {
			MatchID    string             `json:"match_id"`
			ModeID     int                `json:"mode_id"`
			Difficult  int                `json:"difficult"`
			PlayerInfo *playerInfoRequest `json:"player_info"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fmt.Errorf("%w: invalid JSON body", services.ErrInvalidRequest))
		}
		if req.MatchID == "" || req.PlayerInfo == nil || req.PlayerInfo.SteamID == "" {
			return fail(c, fmt.Errorf("%w: match_id and player_info with SteamID are required", services.ErrInvalidRequest))
		}

		result, err := matchService.FinishMatch(c.Context(), services.FinishMatchInput{
			MatchID:     req.MatchID,
			GameMode:    req.ModeID,
			Difficulty:  req.Difficult,
			Duration:    req.PlayerInfo.Duration,
			SteamID:     req.PlayerInfo.SteamID,
			HeroName:    req.PlayerInfo.HeroName,
			KillsCreeps: req.PlayerInfo.KillsCreeps,
			Deaths:      req.PlayerInfo.Deaths,
			Gold:        req.PlayerInfo.Gold,
			Level:       req.PlayerInfo.Level,
			Win:         req.PlayerInfo.Win,
		})
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(matchResultMap(result))
	})

	api.Post("/match/finish-simple", gameKey, func(c *fiber.Ctx) error {
		var req struct {
			PlayerInfo *playerInfoRequest `json:"player_info"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fmt.Errorf("%w: invalid JSON body", services.ErrInvalidRequest))
		}
		if req.PlayerInfo == nil || req.PlayerInfo.SteamID == "" {
			return fail(c, fmt.Errorf("%w: player_info with SteamID is required", services.ErrInvalidRequest))
		}

		result, err := matchService.FinishMatchSimple(c.Context(), req.PlayerInfo.SteamID, req.PlayerInfo.Win)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(matchResultMap(result))
	})
}

func matchResultMap(result *services.MatchResult) fiber.Map {
	message := fmt.Sprintf("Defeat! %d rating", result.RatingChange)
	if result.RatingChange > 0 {
		message = fmt.Sprintf("Victory! +%d rating", result.RatingChange)
	}
	return fiber.Map{
		"success":       true,
		"message":       message,
		"rating_change": result.RatingChange,
		"new_rating":    result.Player.Rating,
		"profile":       profileMap(result.Player, false),
	}
}
