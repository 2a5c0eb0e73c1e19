package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreatePost publishes a post to the feed, attributed to the author's profile
// name. Accounts without a name fall back to the feed's anonymous rendering.
func (handler *Handler) CreatePost(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	input := postInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.Content) == "" {
		return apiError(c, fiber.StatusBadRequest, "empty post")
	}

	post, err := handler.feed.CreatePost(user.Name, input.Content)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create post")
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": post.ID})
	}
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}
