package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/strivehq/strive/internal/services"
)

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if user, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect(postLoginRedirectPath(services.StateForUser(user)), fiber.StatusSeeOther)
	}

	flash := popFlashCookie(c)
	return handler.render(c, "login", fiber.Map{
		"Title":        "Strive | Log in",
		"FlashError":   flash.AuthError,
		"FlashSuccess": flash.AuthSuccess,
		"LoginEmail":   flash.LoginEmail,
	})
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	if user, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect(postLoginRedirectPath(services.StateForUser(user)), fiber.StatusSeeOther)
	}

	flash := popFlashCookie(c)
	return handler.render(c, "register", fiber.Map{
		"Title":        "Strive | Sign up",
		"FlashError":   flash.AuthError,
		"FlashSuccess": flash.AuthSuccess,
		"LoginEmail":   flash.LoginEmail,
	})
}

func (handler *Handler) ShowProfilePage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user == nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	flash := popFlashCookie(c)
	return handler.render(c, "profile", fiber.Map{
		"Title":        "Strive | Your profile",
		"FlashError":   flash.AuthError,
		"FlashSuccess": flash.AuthSuccess,
		"User":         user,
	})
}

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user == nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	snapshot, err := handler.feed.Snapshot()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load feed")
	}

	athleteName := c.Cookies(cacheNameCookieName)
	athleteSport := c.Cookies(cacheSportCookie)
	if athleteName == "" {
		athleteName = user.Name
	}
	if athleteSport == "" {
		athleteSport = user.Sport
	}

	flash := popFlashCookie(c)
	return handler.render(c, "dashboard", fiber.Map{
		"Title":        "Strive | Dashboard",
		"FlashError":   flash.AuthError,
		"FlashSuccess": flash.AuthSuccess,
		"AthleteName":  athleteName,
		"AthleteSport": athleteSport,
		"Posts":        snapshot,
	})
}
