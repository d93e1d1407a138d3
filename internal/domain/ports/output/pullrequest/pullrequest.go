package pullrequest

import (
	"context"
	"gh-pr-mirror/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name PullRequestRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename PullRequestRepository.go

type PullRequestRepository interface {
	// UpsertPullRequest replaces the record keyed by (base repository id, number)
	// or inserts it, and sets pr.ID.
	UpsertPullRequest(ctx context.Context, pr *models.PullRequest) error
	DeletePullRequest(ctx context.Context, repositoryID uuid.UUID, number int) (bool, error)
	DeletePullRequestsExcept(ctx context.Context, repositoryID uuid.UUID, numbers []int) (int64, error)
	ListPullRequestsByRepository(ctx context.Context, repositoryID uuid.UUID) ([]*models.PullRequest, error)
	UpsertPullRequestStatus(ctx context.Context, status *models.PullRequestStatus) error
	FindPullRequestStatus(ctx context.Context, sha string, pullRequestID uuid.UUID) (*models.PullRequestStatus, error)
}
