package services

import (
	"fmt"
	"io"
	"time"

	"github.com/strivehq/strive/internal/models"
)

type ProfileUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
}

// ProofStore is the blob-store slice the profile step needs: persist an
// uploaded document and hand back a retrievable URL.
type ProofStore interface {
	Save(userID uint, filename string, content io.Reader) (string, error)
}

type ProfileInput struct {
	Name         string
	Role         string
	Sport        string
	Bio          string
	Achievements string
}

type ProofFile struct {
	Filename string
	Content  io.Reader
}

type ProfileService struct {
	users  ProfileUserRepository
	proofs ProofStore
	now    func() time.Time
}

func NewProfileService(users ProfileUserRepository, proofs ProofStore) *ProfileService {
	return &ProfileService{users: users, proofs: proofs, now: time.Now}
}

// CompleteProfile uploads the proof document (when one was supplied), then
// writes every submitted field together with the completion flag. The upload
// finishes before the write starts: the write needs the resulting URL, and an
// upload failure must leave the record untouched.
func (service *ProfileService) CompleteProfile(userID uint, input ProfileInput, proof *ProofFile) (models.User, error) {
	if userID == 0 {
		return models.User{}, ErrNotAuthenticated
	}

	proofURL := ""
	if proof != nil {
		url, err := service.proofs.Save(userID, proof.Filename, proof.Content)
		if err != nil {
			return models.User{}, fmt.Errorf("store proof: %w", err)
		}
		proofURL = url
	}

	role := input.Role
	if !models.IsValidRole(role) {
		role = models.RoleAthlete
	}

	updates := map[string]any{
		"name":             input.Name,
		"role":             role,
		"sport":            input.Sport,
		"bio":              input.Bio,
		"achievements":     input.Achievements,
		"proof_url":        proofURL,
		"profile_complete": true,
		"updated_at":       service.now(),
	}
	if err := service.users.UpdateByID(userID, updates); err != nil {
		return models.User{}, err
	}

	return service.users.FindByID(userID)
}
