package api

import (
	"html/template"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/strivehq/strive/internal/services"
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	templates    map[string]*template.Template
	loginLimiter *attemptLimiter

	authService    *services.AuthService
	profileService *services.ProfileService
	feed           *services.FeedService
}

// FlashPayload survives one redirect: the status message the original showed
// inline before navigating away.
type FlashPayload struct {
	AuthError   string `json:"auth_error,omitempty"`
	AuthSuccess string `json:"auth_success,omitempty"`
	LoginEmail  string `json:"login_email,omitempty"`
}

const defaultAuthTokenTTL = 7 * 24 * time.Hour

type authClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
