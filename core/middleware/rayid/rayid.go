// Package rayid tags every request with a correlation id.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName carries the ray id on requests and responses.
const HeaderName = "X-Ray-Id"

// New returns a middleware that assigns each request a ray id. An id supplied
// by the caller is kept so upstream gateways can correlate across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
