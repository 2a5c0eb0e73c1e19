package api

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/strivehq/strive/internal/services"
)

func setFlashCookie(c *fiber.Ctx, payload FlashPayload) {
	payload.AuthError = strings.TrimSpace(payload.AuthError)
	payload.AuthSuccess = strings.TrimSpace(payload.AuthSuccess)
	payload.LoginEmail = services.NormalizeAuthEmail(payload.LoginEmail)

	if payload.AuthError == "" && payload.AuthSuccess == "" && payload.LoginEmail == "" {
		clearFlashCookie(c)
		return
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		return
	}
	encoded := base64.RawURLEncoding.EncodeToString(serialized)

	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

func popFlashCookie(c *fiber.Ctx) FlashPayload {
	raw := strings.TrimSpace(c.Cookies(flashCookieName))
	if raw == "" {
		return FlashPayload{}
	}
	clearFlashCookie(c)

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return FlashPayload{}
	}

	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return FlashPayload{}
	}
	payload.AuthError = strings.TrimSpace(payload.AuthError)
	payload.AuthSuccess = strings.TrimSpace(payload.AuthSuccess)
	payload.LoginEmail = services.NormalizeAuthEmail(payload.LoginEmail)
	return payload
}

func clearFlashCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
