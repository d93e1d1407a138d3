package input

import (
	"context"
	"gh-pr-mirror/internal/domain/models"
)

//go:generate mockery --name PullRequestInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename PullRequestInputPort.go

type PullRequestInputPort interface {
	// UpsertOpenAndPruneClosed applies one batch of API results atomically:
	// closed pull requests are deleted, open ones inserted or replaced.
	UpsertOpenAndPruneClosed(ctx context.Context, repo *models.Repository, account models.Account, results []models.APIPullRequest) error
	RefreshPullRequests(ctx context.Context, repo *models.Repository, account models.Account) error
	FetchPullRequestStatus(ctx context.Context, repo *models.Repository, account models.Account, pr *models.PullRequest) error
	FetchPullRequestStatuses(ctx context.Context, repo *models.Repository, account models.Account) error
	GetPullRequests(ctx context.Context, repo *models.Repository) ([]*models.PullRequest, error)
	FindMatchingPullRequests(ctx context.Context, repo *models.Repository, text string) ([]*models.PullRequest, error)
	IsFetchingPullRequests(repo *models.Repository) bool
}
