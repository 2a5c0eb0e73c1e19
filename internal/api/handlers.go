package api

import (
	"errors"
	"time"

	"github.com/strivehq/strive/internal/db"
	"github.com/strivehq/strive/internal/services"
	"github.com/strivehq/strive/internal/storage"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool, proofs storage.BlobStore, watcher *services.IdentityWatcher) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.Local
	}

	templates, err := parsePageTemplates()
	if err != nil {
		return nil, err
	}

	users := db.NewUserRepository(database)
	posts := db.NewPostRepository(database)

	return &Handler{
		secretKey:      []byte(secret),
		location:       location,
		cookieSecure:   cookieSecure,
		templates:      templates,
		loginLimiter:   newAttemptLimiter(),
		authService:    services.NewAuthService(users, watcher),
		profileService: services.NewProfileService(users, proofs),
		feed:           services.NewFeedService(posts, location),
	}, nil
}
