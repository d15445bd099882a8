package middleware

import (
	"time"

	"goldloan-portal/internal/config"
	"goldloan-portal/internal/core/session"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// SessionCookie carries the browser session id
	SessionCookie = "sid"
	// PrerenderHeader marks a non-interactive rendering request
	PrerenderHeader = "X-Prerender"

	sessionLocal = "session"
)

// Sessions binds every request to a session. Browsers without a valid sid
// cookie get a fresh one; prerender requests get a slotless session.
func Sessions(manager *session.Manager, cfg config.CookieConfig, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sess *session.Session
		if c.Get(PrerenderHeader) == "1" {
			sess = session.NonInteractive()
		} else {
			sid := c.Cookies(SessionCookie)
			if _, err := uuid.Parse(sid); err != nil {
				sid = uuid.NewString()
				c.Cookie(&fiber.Cookie{
					Name:     SessionCookie,
					Value:    sid,
					Path:     "/",
					Domain:   cfg.Domain,
					MaxAge:   int(ttl.Seconds()),
					Secure:   cfg.Secure,
					HTTPOnly: true,
					SameSite: cfg.SameSite,
				})
			}
			sess = manager.Acquire(sid)
		}

		c.Locals(sessionLocal, sess)
		c.SetUserContext(session.WithSession(c.UserContext(), sess))
		return c.Next()
	}
}

// SessionFrom returns the session bound by Sessions
func SessionFrom(c *fiber.Ctx) *session.Session {
	if sess, ok := c.Locals(sessionLocal).(*session.Session); ok {
		return sess
	}
	return session.NonInteractive()
}
