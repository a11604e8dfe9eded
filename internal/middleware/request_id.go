package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const CtxRequestID = "request_id"

// RequestID honors an inbound X-Request-ID and assigns one otherwise.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals(CtxRequestID, id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}
