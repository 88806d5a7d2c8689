package handlers

import (
	"fmt"
	"strconv"
	"time"

	"dota2-stats-server/middleware"
	"dota2-stats-server/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPlayerRoutes(app *fiber.App, playerService *services.PlayerService) {
	api := app.Group("/api")
	gameKey := middleware.GameKeyAuth()

	// Browser-facing profile read, no game key required.
	api.Get("/player/:steamId", func(c *fiber.Ctx) error {
		return respondWithProfile(c, playerService, c.Params("steamId"))
	})

	// Server-to-server profile read: the game client sends the steam id in
	// the body (either key spelling) alongside the game key.
	api.Post("/get_player_profile", gameKey, func(c *fiber.Ctx) error {
		var req struct {
			SteamID    string `json:"SteamID"`
			SteamIDAlt string `json:"steamId"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fmt.Errorf("%w: invalid JSON body", services.ErrInvalidRequest))
		}
		steamID := req.SteamID
		if steamID == "" {
			steamID = req.SteamIDAlt
		}
		return respondWithProfile(c, playerService, steamID)
	})

	api.Post("/player", gameKey, func(c *fiber.Ctx) error {
		var req struct {
			SteamID  string `json:"steamId"`
			Nickname string `json:"nickname"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fmt.Errorf("%w: invalid JSON body", services.ErrInvalidRequest))
		}
		if req.SteamID != "" && !isNumericID(req.SteamID) {
			return fail(c, fmt.Errorf("%w: invalid SteamID %q", services.ErrInvalidRequest, req.SteamID))
		}

		player, err := playerService.CreatePlayer(c.Context(), req.SteamID, req.Nickname)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Profile created",
			"profile": profileMap(player, false),
		})
	})

	api.Get("/leaderboard", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(services.DefaultLeaderboardLimit)))
		entries, err := playerService.Leaderboard(c.Context(), limit)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{
			"success":     true,
			"leaderboard": entries,
		})
	})

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":   true,
			"message":   "🚀 Server is up!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}

// respondWithProfile is the single profile-fetch path shared by the
// path-param route and the body-keyed route.
func respondWithProfile(c *fiber.Ctx, playerService *services.PlayerService, steamID string) error {
	if !isNumericID(steamID) {
		return fail(c, fmt.Errorf("%w: invalid SteamID %q", services.ErrInvalidRequest, steamID))
	}

	player, err := playerService.GetProfile(c.Context(), steamID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"profile": profileMap(player, true),
	})
}
