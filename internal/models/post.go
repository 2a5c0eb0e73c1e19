package models

import "time"

// Post is a feed entry. Likes holds the ids of users who liked the post;
// only its length is shown, but the full list is kept so a like can be
// attributed (and undone) later.
type Post struct {
	ID        uint   `gorm:"primaryKey"`
	Author    string
	Content   string
	Likes     []string  `gorm:"serializer:json"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (post *Post) LikeCount() int {
	return len(post.Likes)
}
