package ghrepository

import (
	"context"
	"gh-pr-mirror/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name GitHubRepositoryRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename GitHubRepositoryRepository.go

type GitHubRepositoryRepository interface {
	// UpsertGitHubRepository inserts or replaces the record identified by
	// (owner endpoint, owner login, name) and sets repo.ID.
	UpsertGitHubRepository(ctx context.Context, repo *models.GitHubRepository) error
	GetGitHubRepositoryByID(ctx context.Context, id uuid.UUID) (*models.GitHubRepository, error)
}
