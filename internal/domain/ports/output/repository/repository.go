package repository

import (
	"context"
	"gh-pr-mirror/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name RepositoryRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename RepositoryRepository.go

type RepositoryRepository interface {
	CreateRepository(ctx context.Context, repo *models.Repository) error
	GetRepositoryByID(ctx context.Context, id uuid.UUID) (*models.Repository, error)
	GetRepositoryByPath(ctx context.Context, path string) (*models.Repository, error)
	GetRepository(ctx context.Context, name string, path string) (*models.Repository, error)
	ListRepositories(ctx context.Context) ([]*models.Repository, error)
	UpdateMissing(ctx context.Context, name string, path string, missing bool) error
	UpdatePath(ctx context.Context, name string, path string, newPath string) error
	LinkGitHubRepository(ctx context.Context, name string, path string, githubRepositoryID uuid.UUID) error
}
