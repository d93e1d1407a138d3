package models

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Repository is a local working copy tracked by the mirror.
// (Name, Path) is its natural key.
type Repository struct {
	ID               uuid.UUID
	Name             string
	Path             string
	IsMissing        bool
	GitHubRepository *GitHubRepository
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// FullName returns owner/name when the repository is linked to GitHub.
func (r *Repository) FullName() string {
	if r.GitHubRepository != nil {
		return r.GitHubRepository.FullName()
	}
	if r.Name != "" {
		return r.Name
	}
	return filepath.Base(r.Path)
}

// FetchKey identifies the repository in the fetch tracker. Two clones of the
// same GitHub repository get different keys.
func (r *Repository) FetchKey() string {
	return fmt.Sprintf("%s-%s", r.FullName(), r.Path)
}

func (r *Repository) Hash() string {
	gh := "<nil>"
	if r.GitHubRepository != nil {
		gh = r.GitHubRepository.Hash()
	}
	return fmt.Sprintf("%s+%s+%t+%s", r.Name, r.Path, r.IsMissing, gh)
}
