package services

import (
	"errors"
	"testing"

	"github.com/strivehq/strive/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type stubAuthRepo struct {
	userByEmail  models.User
	emailErr     error
	userByID     models.User
	findByIDErr  error
	existsResult bool
	existsErr    error
	createErr    error

	existsCalls int
	createCalls int
	lookupCalls int
	created     *models.User
}

func (stub *stubAuthRepo) ExistsByNormalizedEmail(string) (bool, error) {
	stub.existsCalls++
	return stub.existsResult, stub.existsErr
}

func (stub *stubAuthRepo) FindByNormalizedEmail(string) (models.User, error) {
	stub.lookupCalls++
	if stub.emailErr != nil {
		return models.User{}, stub.emailErr
	}
	return stub.userByEmail, nil
}

func (stub *stubAuthRepo) FindByID(uint) (models.User, error) {
	if stub.findByIDErr != nil {
		return models.User{}, stub.findByIDErr
	}
	return stub.userByID, nil
}

func (stub *stubAuthRepo) Create(user *models.User) error {
	stub.createCalls++
	if stub.createErr != nil {
		return stub.createErr
	}
	user.ID = 7
	stub.created = user
	return nil
}

func hashForTest(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func TestSignUpMismatchedPasswordsNeverTouchesRepository(t *testing.T) {
	repo := &stubAuthRepo{}
	service := NewAuthService(repo, nil)

	_, state, err := service.SignUp(SignUpInput{
		Email:           "ana@strive.local",
		Password:        "Sprint100m",
		ConfirmPassword: "Sprint200m",
		Role:            models.RoleAthlete,
	})

	if !errors.Is(err, ErrPasswordsDoNotMatch) {
		t.Fatalf("SignUp() error = %v, want ErrPasswordsDoNotMatch", err)
	}
	if state != StateAnonymous {
		t.Fatalf("SignUp() state = %q, want %q", state, StateAnonymous)
	}
	if repo.existsCalls != 0 || repo.createCalls != 0 || repo.lookupCalls != 0 {
		t.Fatalf("expected zero repository calls, got exists=%d create=%d lookup=%d",
			repo.existsCalls, repo.createCalls, repo.lookupCalls)
	}
}

func TestSignUpRejectsWeakPasswordBeforeRepository(t *testing.T) {
	repo := &stubAuthRepo{}
	service := NewAuthService(repo, nil)

	_, state, err := service.SignUp(SignUpInput{
		Email:           "ana@strive.local",
		Password:        "short1",
		ConfirmPassword: "short1",
	})

	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("SignUp() error = %v, want ErrWeakPassword", err)
	}
	if state != StateAnonymous {
		t.Fatalf("SignUp() state = %q, want %q", state, StateAnonymous)
	}
	if repo.existsCalls != 0 || repo.createCalls != 0 {
		t.Fatalf("expected zero repository calls, got exists=%d create=%d", repo.existsCalls, repo.createCalls)
	}
}

func TestSignUpCreatesMinimalIncompleteProfile(t *testing.T) {
	repo := &stubAuthRepo{}
	service := NewAuthService(repo, nil)

	user, state, err := service.SignUp(SignUpInput{
		Email:           "ana@strive.local",
		Password:        "Sprint100m",
		ConfirmPassword: "Sprint100m",
		Role:            "not-a-role",
	})
	if err != nil {
		t.Fatalf("SignUp() unexpected error: %v", err)
	}

	if state != StateAwaitingProfile {
		t.Fatalf("SignUp() state = %q, want %q", state, StateAwaitingProfile)
	}
	if repo.created == nil {
		t.Fatal("expected Create() to be called")
	}
	if repo.created.ProfileComplete {
		t.Fatal("expected new account to start with an incomplete profile")
	}
	if repo.created.Role != models.RoleAthlete {
		t.Fatalf("expected invalid role to default to athlete, got %q", repo.created.Role)
	}
	if user.ID == 0 {
		t.Fatal("expected returned user to carry the created id")
	}
	if bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("Sprint100m")) != nil {
		t.Fatal("expected stored hash to verify against the password")
	}
}

func TestSignUpTakenEmailStaysAnonymous(t *testing.T) {
	repo := &stubAuthRepo{existsResult: true}
	service := NewAuthService(repo, nil)

	_, state, err := service.SignUp(SignUpInput{
		Email:           "ana@strive.local",
		Password:        "Sprint100m",
		ConfirmPassword: "Sprint100m",
	})

	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("SignUp() error = %v, want ErrEmailTaken", err)
	}
	if state != StateAnonymous {
		t.Fatalf("SignUp() state = %q, want %q", state, StateAnonymous)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no Create() call for a taken email, got %d", repo.createCalls)
	}
}

func TestLogInTransitionsOnProfileCompletion(t *testing.T) {
	hash := hashForTest(t, "Sprint100m")

	cases := []struct {
		name      string
		profile   models.User
		findErr   error
		wantState SessionState
		wantName  string
		wantSport string
	}{
		{
			name:      "complete profile goes to ready",
			profile:   models.User{ID: 1, Name: "Ana", Sport: "Track", ProfileComplete: true},
			wantState: StateReady,
			wantName:  "Ana",
			wantSport: "Track",
		},
		{
			name:      "incomplete profile awaits completion",
			profile:   models.User{ID: 1, ProfileComplete: false},
			wantState: StateAwaitingProfile,
		},
		{
			name:      "missing profile record degrades without failing",
			findErr:   errors.New("record not found"),
			wantState: StateAwaitingProfile,
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			repo := &stubAuthRepo{
				userByEmail: models.User{ID: 1, Email: "ana@strive.local", PasswordHash: hash},
				userByID:    testCase.profile,
				findByIDErr: testCase.findErr,
			}
			service := NewAuthService(repo, nil)

			result, err := service.LogIn("ana@strive.local", "Sprint100m")
			if err != nil {
				t.Fatalf("LogIn() unexpected error: %v", err)
			}
			if result.State != testCase.wantState {
				t.Fatalf("LogIn() state = %q, want %q", result.State, testCase.wantState)
			}
			if result.Name != testCase.wantName || result.Sport != testCase.wantSport {
				t.Fatalf("LogIn() cached (%q, %q), want (%q, %q)",
					result.Name, result.Sport, testCase.wantName, testCase.wantSport)
			}
		})
	}
}

func TestLogInWrongPasswordFails(t *testing.T) {
	repo := &stubAuthRepo{
		userByEmail: models.User{ID: 1, Email: "ana@strive.local", PasswordHash: hashForTest(t, "Sprint100m")},
	}
	service := NewAuthService(repo, nil)

	result, err := service.LogIn("ana@strive.local", "wrong-pass")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("LogIn() error = %v, want ErrInvalidCredentials", err)
	}
	if result.State != StateAnonymous {
		t.Fatalf("LogIn() state = %q, want %q", result.State, StateAnonymous)
	}
}

func TestLogInUnknownEmailFails(t *testing.T) {
	repo := &stubAuthRepo{emailErr: errors.New("record not found")}
	service := NewAuthService(repo, nil)

	_, err := service.LogIn("ghost@strive.local", "whatever1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("LogIn() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogOutEntersLoggedOutState(t *testing.T) {
	service := NewAuthService(&stubAuthRepo{}, nil)

	state := service.LogOut(&models.User{ID: 1, Email: "ana@strive.local"})
	if state != StateLoggedOut {
		t.Fatalf("LogOut() state = %q, want %q", state, StateLoggedOut)
	}
}

func TestStateForUser(t *testing.T) {
	if state := StateForUser(nil); state != StateAnonymous {
		t.Fatalf("StateForUser(nil) = %q, want %q", state, StateAnonymous)
	}
	if state := StateForUser(&models.User{ProfileComplete: true}); state != StateReady {
		t.Fatalf("StateForUser(complete) = %q, want %q", state, StateReady)
	}
	if state := StateForUser(&models.User{}); state != StateAwaitingProfile {
		t.Fatalf("StateForUser(incomplete) = %q, want %q", state, StateAwaitingProfile)
	}
}
