package issue

import (
	"context"
	"gh-pr-mirror/internal/domain/models"
	"time"

	"github.com/google/uuid"
)

//go:generate mockery --name IssueRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename IssueRepository.go

type IssueRepository interface {
	UpsertIssue(ctx context.Context, repositoryID uuid.UUID, issue *models.Issue) error
	DeleteIssue(ctx context.Context, repositoryID uuid.UUID, number int) (bool, error)
	ListIssuesByRepository(ctx context.Context, repositoryID uuid.UUID) ([]*models.Issue, error)
	// LatestUpdatedAt returns nil when the repository has no cached issues.
	LatestUpdatedAt(ctx context.Context, repositoryID uuid.UUID) (*time.Time, error)
}
