package input

import (
	"context"
	"gh-pr-mirror/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name RepositoryInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename RepositoryInputPort.go

type RepositoryInputPort interface {
	AddRepository(ctx context.Context, path string) (*models.Repository, error)
	GetAll(ctx context.Context) ([]*models.Repository, error)
	GetRepository(ctx context.Context, id uuid.UUID) (*models.Repository, error)
	UpdateRepositoryMissing(ctx context.Context, repo *models.Repository, missing bool) (*models.Repository, error)
	UpdateRepositoryPath(ctx context.Context, repo *models.Repository, path string) (*models.Repository, error)
	UpsertGitHubRepository(ctx context.Context, repo *models.Repository, endpoint string, apiResult *models.APIRepository) (*models.GitHubRepository, error)
	UpdateGitHubRepository(ctx context.Context, repo *models.Repository, endpoint string, apiResult *models.APIRepository) (*models.Repository, error)
	AddParentGitHubRepository(ctx context.Context, repo *models.Repository, endpoint string, head *models.APIRepository, base *models.APIRepository) (*models.Repository, error)
	// LinkGitHubRepository fetches owner/name and links it to repo.
	LinkGitHubRepository(ctx context.Context, repo *models.Repository, account models.Account, owner string, name string) (*models.Repository, error)
	RefreshGitHubRepository(ctx context.Context, repo *models.Repository, account models.Account) (*models.Repository, error)
	FindGitHubRepositoryByID(ctx context.Context, id uuid.UUID) (*models.GitHubRepository, error)
}
