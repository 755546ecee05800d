package sessions

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"gpa-tracker/app/session"
)

const (
	CookieName = "gpa_session"
	HeaderName = "X-Session-ID"
	localsKey  = "session"
)

// Middleware attaches the caller's session to the request, creating one when the
// request carries no known session id. The id is echoed back as a cookie and a
// header so API clients without cookies can keep it.
func Middleware(store *session.Store, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals(localsKey).(*session.Session); ok {
			return c.Next()
		}

		id := c.Cookies(CookieName)
		if id == "" {
			id = c.Get(HeaderName)
		}

		sess, _ := store.Acquire(id)
		c.Locals(localsKey, sess)
		c.Set(HeaderName, sess.ID)

		cookie := &fiber.Cookie{
			Name:     CookieName,
			Value:    sess.ID,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		}
		if ttl > 0 {
			cookie.Expires = time.Now().Add(ttl)
		}
		c.Cookie(cookie)
		return c.Next()
	}
}

// Current returns the session attached by Middleware.
func Current(c *fiber.Ctx) *session.Session {
	return c.Locals(localsKey).(*session.Session)
}
