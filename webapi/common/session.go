package common

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	SessionCookieName = "session_id"
	sessionLocalsKey  = "session_id"
	sessionCookieTTL  = 365 * 24 * time.Hour
)

// SessionMiddleware identifies the client by the session_id cookie.
// A client without one gets a fresh UUID, set on the response, which is
// also used for the current request.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(SessionCookieName)
		if sessionID == "" {
			sessionID = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				Expires:  time.Now().Add(sessionCookieTTL),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(sessionLocalsKey, sessionID)
		return c.Next()
	}
}

// SessionID returns the session identified by SessionMiddleware.
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(sessionLocalsKey).(string)
	return id
}
