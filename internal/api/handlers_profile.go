package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/strivehq/strive/internal/services"
)

// SaveProfile completes the one-time profile step. The proof document is
// optional; when present it is stored before the profile row is written.
func (handler *Handler) SaveProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user == nil {
		if acceptsJSON(c) {
			return apiError(c, fiber.StatusUnauthorized, "not authenticated")
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	var proof *services.ProofFile
	fileHeader, err := c.FormFile("proof")
	if err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "unreadable proof file")
		}
		defer file.Close()
		proof = &services.ProofFile{Filename: fileHeader.Filename, Content: file}
	}

	updated, err := handler.profileService.CompleteProfile(user.ID, services.ProfileInput{
		Name:         input.Name,
		Role:         input.Role,
		Sport:        input.Sport,
		Bio:          input.Bio,
		Achievements: input.Achievements,
	}, proof)
	if err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}

	handler.setSessionCacheCookies(c, updated.Name, updated.Sport)
	return redirectOrJSON(c, "/dashboard")
}
