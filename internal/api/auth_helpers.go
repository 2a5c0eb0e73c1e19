package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/strivehq/strive/internal/services"
)

func postLoginRedirectPath(state services.SessionState) string {
	if state == services.StateReady {
		return "/dashboard"
	}
	return "/profile"
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}

	email, password, err := services.NormalizeCredentialsInput(credentials.Email, credentials.Password)
	if err != nil {
		return credentialsInput{}, err
	}
	credentials.Email = email
	credentials.Password = password
	credentials.ConfirmPassword = strings.TrimSpace(credentials.ConfirmPassword)
	credentials.Role = strings.TrimSpace(credentials.Role)

	return credentials, nil
}

// respondAuthError turns a failed auth action into a flash message plus a
// redirect back to the form, or a JSON error for API clients.
func (handler *Handler) respondAuthError(c *fiber.Ctx, status int, message string) error {
	if strings.HasPrefix(c.Path(), "/api/auth/") && !acceptsJSON(c) {
		flash := FlashPayload{AuthError: message}
		switch c.Path() {
		case "/api/auth/register":
			flash.LoginEmail = services.NormalizeAuthEmail(c.FormValue("email"))
			setFlashCookie(c, flash)
			return c.Redirect("/register", fiber.StatusSeeOther)
		case "/api/auth/login":
			flash.LoginEmail = services.NormalizeAuthEmail(c.FormValue("email"))
			setFlashCookie(c, flash)
			return c.Redirect("/login", fiber.StatusSeeOther)
		default:
			setFlashCookie(c, flash)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
	}
	return apiError(c, status, message)
}
