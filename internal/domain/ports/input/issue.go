package input

import (
	"context"
	"gh-pr-mirror/internal/domain/models"
	"time"
)

//go:generate mockery --name IssueInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename IssueInputPort.go

type IssueInputPort interface {
	RefreshIssues(ctx context.Context, repo *models.Repository, account models.Account) error
	GetIssues(ctx context.Context, repo *models.Repository) ([]*models.Issue, error)
	ComputeSinceWatermark(ctx context.Context, repo *models.Repository) (*time.Time, error)
	FindMatchingIssues(ctx context.Context, repo *models.Repository, text string) ([]*models.Issue, error)
}
