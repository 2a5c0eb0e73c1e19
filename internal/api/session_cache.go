package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// The session cache is the device-local copy of two profile fields the
// dashboard greets with. Written at login and at profile save, cleared in
// full at logout; it may go stale if the profile is edited elsewhere, and
// nothing reconciles that. Readable by page scripts, hence not HTTPOnly.

func (handler *Handler) setSessionCacheCookies(c *fiber.Ctx, name string, sport string) {
	for cookieName, value := range map[string]string{
		cacheNameCookieName: name,
		cacheSportCookie:    sport,
	} {
		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    value,
			Path:     "/",
			HTTPOnly: false,
			Secure:   handler.cookieSecure,
			SameSite: "Lax",
			Expires:  time.Now().Add(defaultAuthTokenTTL),
		})
	}
}

func (handler *Handler) clearSessionCacheCookies(c *fiber.Ctx) {
	for _, cookieName := range []string{cacheNameCookieName, cacheSportCookie} {
		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    "",
			Path:     "/",
			HTTPOnly: false,
			Secure:   handler.cookieSecure,
			SameSite: "Lax",
			Expires:  time.Now().Add(-1 * time.Hour),
		})
	}
}
