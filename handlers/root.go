package handlers

import (
	"errors"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
)

// SetupRootRoutes registers the informational root endpoint.
func SetupRootRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Dota 2 Stats API Server",
			"version": "1.0.0",
			"endpoints": []string{
				"/api/health",
				"/api/player/:steamId",
				"/api/leaderboard",
			},
		})
	})
}

// SetupNotFoundHandler registers the catch-all for unknown routes. Must be
// added after every real route.
func SetupNotFoundHandler(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success":      false,
			"error":        "Route not found",
			"requestedUrl": c.OriginalURL(),
			"method":       c.Method(),
		})
	})
}

// ErrorHandler is the Fiber fallback for errors escaping the handlers.
// Internal detail is suppressed in production.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	log.Printf("❌ Unhandled error on %s %s: %v", c.Method(), c.Path(), err)

	msg := err.Error()
	if os.Getenv("APP_ENV") == "production" {
		msg = "Internal server error"
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}
