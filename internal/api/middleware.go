package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/strivehq/strive/internal/models"
)

const (
	authCookieName      = "strive_auth"
	flashCookieName     = "strive_flash"
	cacheNameCookieName = "athlete_name"
	cacheSportCookie    = "athlete_sport"
	contextUserKey      = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
