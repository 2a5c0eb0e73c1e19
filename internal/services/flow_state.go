package services

import "github.com/strivehq/strive/internal/models"

// SessionState is where a visitor sits in the signup → profile → dashboard
// flow. Authenticating is transient inside a single handler call and is never
// materialized.
type SessionState string

const (
	StateAnonymous       SessionState = "anonymous"
	StateAwaitingProfile SessionState = "awaiting_profile"
	StateReady           SessionState = "ready"
	StateLoggedOut       SessionState = "logged_out"
)

// StateForUser maps an authenticated account onto the flow: the dashboard is
// reachable only once the profile has been completed.
func StateForUser(user *models.User) SessionState {
	if user == nil {
		return StateAnonymous
	}
	if user.ProfileComplete {
		return StateReady
	}
	return StateAwaitingProfile
}
