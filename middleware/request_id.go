package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with an id and logs it once it finishes.
// Handlers find a logger carrying the id through zerolog.Ctx.
func RequestID(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Locals("requestId", id)
		reqLog := log.With().Str("requestId", id).Logger()
		c.SetUserContext(reqLog.WithContext(c.UserContext()))

		start := time.Now()
		err := c.Next()
		log.Debug().
			Str("requestId", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", statusOf(c, err)).
			Dur("took", time.Since(start)).
			Msg("request")
		return err
	}
}
