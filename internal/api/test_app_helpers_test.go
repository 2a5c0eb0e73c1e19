package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/strivehq/strive/internal/db"
	"github.com/strivehq/strive/internal/models"
	"github.com/strivehq/strive/internal/storage"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	app, database, _ := newTestAppWithDataDir(t)
	return app, database
}

func newTestAppWithDataDir(t *testing.T) (*fiber.App, *gorm.DB, string) {
	t.Helper()

	dataDir := t.TempDir()
	databasePath := filepath.Join(dataDir, "strive-test.db")

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	proofs := storage.NewDiskStore(filepath.Join(dataDir, "uploads"), "/uploads")

	handler, err := NewHandler(database, "test-secret-key", time.UTC, false, proofs, nil)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database, dataDir
}

func createTestUser(t *testing.T, database *gorm.DB, email string, password string, profileComplete bool) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:           email,
		PasswordHash:    string(hash),
		Role:            models.RoleAthlete,
		ProfileComplete: profileComplete,
	}
	if profileComplete {
		user.Name = "Test Athlete"
		user.Sport = "Rowing"
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := postForm(t, app, "/api/auth/login", url.Values{
		"email":    {email},
		"password": {password},
	}, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login status 303, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, authCookie string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return response
}

func responseCookie(response *http.Response, name string) *http.Cookie {
	for _, cookie := range response.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
