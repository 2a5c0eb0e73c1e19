package models

import "time"

const (
	RoleAthlete = "athlete"
	RoleCoach   = "coach"
	RoleScout   = "scout"
)

type User struct {
	ID              uint   `gorm:"primaryKey"`
	Email           string `gorm:"uniqueIndex;not null"`
	PasswordHash    string `gorm:"not null"`
	Role            string `gorm:"not null;default:athlete"`
	Name            string
	Sport           string
	Bio             string
	Achievements    string
	ProofURL        string
	ProfileComplete bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAthlete, RoleCoach, RoleScout:
		return true
	}
	return false
}
