package middleware

import (
	contextPkg "BlogPlatform/pkg/context"
	"BlogPlatform/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"time"
)

// NewRequestIDMiddleware keeps an incoming X-Request-ID or mints a ULID,
// and echoes it on the response.
func NewRequestIDMiddleware(u utils.IUtils) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(contextPkg.RequestIDLocal)

		if requestID == "" {
			requestID, _ = u.NewULIDFromTimestamp(time.Now())
		}

		c.Locals(contextPkg.RequestIDLocal, requestID)
		c.Set(contextPkg.RequestIDLocal, requestID)

		return c.Next()
	}
}
