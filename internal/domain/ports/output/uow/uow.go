package uow

import (
	ghrepository "gh-pr-mirror/internal/domain/ports/output/ghrepository"
	issue "gh-pr-mirror/internal/domain/ports/output/issue"
	pullrequest "gh-pr-mirror/internal/domain/ports/output/pullrequest"
	repository "gh-pr-mirror/internal/domain/ports/output/repository"
	"context"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename UnitOfWork.go
//go:generate mockery --name Transaction --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename Transaction.go

type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Transaction groups writes into one atomic batch. Commit is the flush to
// durable storage.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	RepositoryRepository() repository.RepositoryRepository
	GitHubRepositoryRepository() ghrepository.GitHubRepositoryRepository
	PullRequestRepository() pullrequest.PullRequestRepository
	IssueRepository() issue.IssueRepository
}
