package github

import (
	"context"
	"gh-pr-mirror/internal/domain/models"
	"time"
)

//go:generate mockery --name API --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename API.go
//go:generate mockery --name ClientFactory --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename ClientFactory.go

type API interface {
	FetchPullRequests(ctx context.Context, owner string, name string, state string) ([]models.APIPullRequest, error)
	FetchCombinedStatus(ctx context.Context, owner string, name string, sha string) (*models.APICombinedStatus, error)
	FetchRepository(ctx context.Context, owner string, name string) (*models.APIRepository, error)
	FetchIssues(ctx context.Context, owner string, name string, state string, since *time.Time) ([]models.APIIssue, error)
}

type ClientFactory interface {
	ForAccount(account models.Account) (API, error)
}
