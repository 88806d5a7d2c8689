package middleware

import (
	"encoding/json"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
)

// GameKeyAuth validates the shared secret sent by the game client in the
// JSON body or query string. It guards the write endpoints and the
// server-to-server profile read; browser-facing reads skip it.
func GameKeyAuth() fiber.Handler {
	expectedKey := os.Getenv("GAME_KEY")
	if expectedKey == "" {
		log.Fatal("❌ GAME_KEY is not set — service cannot authenticate game clients")
	}

	return func(c *fiber.Ctx) error {
		gameKey := c.Query("GameKey")
		if gameKey == "" && len(c.Body()) > 0 {
			var body struct {
				GameKey string `json:"GameKey"`
			}
			if err := json.Unmarshal(c.Body(), &body); err == nil {
				gameKey = body.GameKey
			}
		}

		if gameKey == "" || gameKey != expectedKey {
			log.Printf("🚫 [GAME_KEY] Invalid or missing key for %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid game key",
			})
		}

		return c.Next()
	}
}
