package uow

import (
	"context"
	"errors"
	"fmt"

	ports "gh-pr-mirror/internal/domain/ports/output"
	ghrepo_port "gh-pr-mirror/internal/domain/ports/output/ghrepository"
	issue_port "gh-pr-mirror/internal/domain/ports/output/issue"
	pullrequest_port "gh-pr-mirror/internal/domain/ports/output/pullrequest"
	repository_port "gh-pr-mirror/internal/domain/ports/output/repository"
	"gh-pr-mirror/internal/domain/ports/output/uow"
	ghrepo_repo "gh-pr-mirror/internal/infrastructure/persistence/postgres/ghrepo"
	issue_repo "gh-pr-mirror/internal/infrastructure/persistence/postgres/issue"
	localrepo_repo "gh-pr-mirror/internal/infrastructure/persistence/postgres/localrepo"
	pullrequest_repo "gh-pr-mirror/internal/infrastructure/persistence/postgres/pullrequest"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
	log  ports.Logger
}

func NewPostgresUOW(pool *pgxpool.Pool, log ports.Logger) uow.UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log}
}

func (u *PostgresUnitOfWork) Begin(ctx context.Context) (uow.Transaction, error) {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: u.log}, nil
}

type PostgresTransaction struct {
	tx  pgx.Tx
	log ports.Logger
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// Rollback after a successful Commit is a no-op.
func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

func (t *PostgresTransaction) RepositoryRepository() repository_port.RepositoryRepository {
	return localrepo_repo.NewRepositoryRepository(t.tx, t.log)
}

func (t *PostgresTransaction) GitHubRepositoryRepository() ghrepo_port.GitHubRepositoryRepository {
	return ghrepo_repo.NewGitHubRepositoryRepository(t.tx, t.log)
}

func (t *PostgresTransaction) PullRequestRepository() pullrequest_port.PullRequestRepository {
	return pullrequest_repo.NewPullRequestRepository(t.tx, t.log)
}

func (t *PostgresTransaction) IssueRepository() issue_port.IssueRepository {
	return issue_repo.NewIssueRepository(t.tx, t.log)
}
