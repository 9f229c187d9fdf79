// Package auth protects the API behind a shared key.
package auth

import "github.com/gofiber/fiber/v2"

// Config holds configuration for the auth middleware.
type Config struct {
	// ApiKey is the expected key. An empty key disables the check, which is
	// only sensible for local development.
	ApiKey string
}

// New returns a middleware that rejects requests without the configured API
// key. The key is read from the X-Api-Key header or the api_key query
// parameter.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}

		key := c.Get("X-Api-Key")
		if key == "" {
			key = c.Query("api_key")
		}
		if key != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid api key",
			})
		}
		return c.Next()
	}
}
