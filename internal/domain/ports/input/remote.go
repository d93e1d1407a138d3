package input

import (
	"context"
	"gh-pr-mirror/internal/domain/models"
)

//go:generate mockery --name RemoteInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename RemoteInputPort.go

type RemoteInputPort interface {
	PruneStaleForkRemotes(ctx context.Context, repo *models.Repository, openPullRequests []*models.PullRequest) ([]models.Remote, error)
	EnsureForkRemote(ctx context.Context, repo *models.Repository, pr *models.PullRequest) (*models.Remote, error)
	AddUpstreamRemote(ctx context.Context, repo *models.Repository) (*models.Remote, error)
}
