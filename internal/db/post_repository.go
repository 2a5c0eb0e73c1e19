package db

import (
	"github.com/strivehq/strive/internal/models"
	"gorm.io/gorm"
)

type PostRepository struct {
	database *gorm.DB
}

func NewPostRepository(database *gorm.DB) *PostRepository {
	return &PostRepository{database: database}
}

// ListNewestFirst is the feed query: most recent post first. The id tiebreak
// keeps the order deterministic when two posts share a timestamp.
func (repo *PostRepository) ListNewestFirst() ([]models.Post, error) {
	posts := make([]models.Post, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepository) Create(post *models.Post) error {
	return repo.database.Create(post).Error
}
