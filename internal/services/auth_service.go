package services

import (
	"errors"
	"time"

	"github.com/strivehq/strive/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrEmailTaken          = errors.New("email already in use")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrNotAuthenticated    = errors.New("not authenticated")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type SignUpInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

// LoginResult carries the authenticated account, its flow state and the two
// fields the dashboard caches locally. Name and Sport stay empty when the
// profile record could not be read.
type LoginResult struct {
	User  models.User
	State SessionState
	Name  string
	Sport string
}

// AuthService drives the anonymous → awaiting-profile → ready flow. It never
// holds the current identity itself; the session cookie does.
type AuthService struct {
	users   AuthUserRepository
	watcher *IdentityWatcher
	now     func() time.Time
}

func NewAuthService(users AuthUserRepository, watcher *IdentityWatcher) *AuthService {
	return &AuthService{users: users, watcher: watcher, now: time.Now}
}

// SignUp creates an account plus its minimal, incomplete profile record.
// A confirm-password mismatch is rejected before any repository call.
func (service *AuthService) SignUp(input SignUpInput) (models.User, SessionState, error) {
	if input.Password != input.ConfirmPassword {
		return models.User{}, StateAnonymous, ErrPasswordsDoNotMatch
	}
	if err := ValidatePasswordStrength(input.Password); err != nil {
		return models.User{}, StateAnonymous, err
	}

	role := input.Role
	if !models.IsValidRole(role) {
		role = models.RoleAthlete
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, StateAnonymous, err
	}

	taken, err := service.users.ExistsByNormalizedEmail(input.Email)
	if err != nil {
		return models.User{}, StateAnonymous, err
	}
	if taken {
		return models.User{}, StateAnonymous, ErrEmailTaken
	}

	user := models.User{
		Email:           input.Email,
		PasswordHash:    string(passwordHash),
		Role:            role,
		ProfileComplete: false,
		CreatedAt:       service.now(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, StateAnonymous, ErrEmailTaken
	}

	service.watcher.SignedIn(user.Email)
	return user, StateAwaitingProfile, nil
}

// LogIn verifies credentials, then reads the profile record for the account.
// A missing record degrades to an empty cache and the awaiting-profile state
// instead of failing the login.
func (service *AuthService) LogIn(email string, password string) (LoginResult, error) {
	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return LoginResult{State: StateAnonymous}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return LoginResult{State: StateAnonymous}, ErrInvalidCredentials
	}

	result := LoginResult{User: user, State: StateAwaitingProfile}
	profile, err := service.users.FindByID(user.ID)
	if err == nil {
		result.User = profile
		result.State = StateForUser(&profile)
		result.Name = profile.Name
		result.Sport = profile.Sport
	}

	service.watcher.SignedIn(user.Email)
	return result, nil
}

// LogOut reports the sign-out; clearing the cookie session and the local
// cache is the caller's side of the transition.
func (service *AuthService) LogOut(user *models.User) SessionState {
	email := ""
	if user != nil {
		email = user.Email
	}
	service.watcher.SignedOut(email)
	return StateLoggedOut
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
