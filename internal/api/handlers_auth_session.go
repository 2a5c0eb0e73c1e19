package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/strivehq/strive/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}
	if credentials.ConfirmPassword == "" {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, state, err := handler.authService.SignUp(services.SignUpInput{
		Email:           credentials.Email,
		Password:        credentials.Password,
		ConfirmPassword: credentials.ConfirmPassword,
		Role:            credentials.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordsDoNotMatch):
			return handler.respondAuthError(c, fiber.StatusBadRequest, "passwords do not match")
		case errors.Is(err, services.ErrWeakPassword):
			return handler.respondAuthError(c, fiber.StatusBadRequest, "weak password")
		case errors.Is(err, services.ErrEmailTaken):
			return handler.respondAuthError(c, fiber.StatusConflict, "email already in use")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create account")
		}
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	setFlashCookie(c, FlashPayload{AuthSuccess: "Signup successful!"})
	return redirectOrJSON(c, postLoginRedirectPath(state))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	const loginAttemptsLimit = 10
	const loginAttemptsWindow = 15 * time.Minute

	now := time.Now().In(handler.location)
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		return handler.respondAuthError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	credentials, err := parseCredentials(c)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := handler.authService.LogIn(credentials.Email, credentials.Password)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return handler.respondAuthError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, &result.User); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.setSessionCacheCookies(c, result.Name, result.Sport)

	setFlashCookie(c, FlashPayload{AuthSuccess: "Login successful!"})
	return redirectOrJSON(c, postLoginRedirectPath(result.State))
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	handler.authService.LogOut(user)

	handler.clearAuthCookie(c)
	handler.clearSessionCacheCookies(c)
	clearFlashCookie(c)

	return redirectOrJSON(c, "/login")
}
