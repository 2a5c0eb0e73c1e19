package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired gates everything behind the login screen, and keeps an account
// whose profile is still incomplete on the profile page until it finishes.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, user)
	if !user.ProfileComplete && !isProfilePath(c.Path()) {
		if strings.HasPrefix(c.Path(), "/api/") {
			if c.Path() == "/api/auth/logout" {
				return c.Next()
			}
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "profile incomplete"})
		}
		return c.Redirect("/profile", fiber.StatusSeeOther)
	}

	return c.Next()
}

func isProfilePath(path string) bool {
	cleanPath := strings.TrimSpace(path)
	return cleanPath == "/profile" || strings.HasPrefix(cleanPath, "/profile/") ||
		cleanPath == "/api/profile" || strings.HasPrefix(cleanPath, "/api/profile/")
}
