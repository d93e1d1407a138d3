//go:build integration

package integration

import (
	"context"
	"testing"

	"gh-pr-mirror/internal/domain/models"
	"gh-pr-mirror/internal/domain/ports/output/uow"
	"gh-pr-mirror/internal/infrastructure/logger"
	pg_uow "gh-pr-mirror/internal/infrastructure/persistence/postgres/uow"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func TruncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		TRUNCATE TABLE issues, pull_request_statuses, pull_requests, repositories, github_repositories CASCADE;
	`)
	return err
}

func newUOW() uow.UnitOfWork {
	return pg_uow.NewPostgresUOW(pgC.Pool, logger.New("test"))
}

func reset(t *testing.T) {
	t.Helper()
	require.NoError(t, TruncateAll(testCtx, pgC.Pool))
}

// inTx runs fn in a transaction and commits it.
func inTx(t *testing.T, fn func(tx uow.Transaction)) {
	t.Helper()
	tx, err := newUOW().Begin(testCtx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(testCtx) }()
	fn(tx)
	require.NoError(t, tx.Commit(testCtx))
}

func apiRepo(owner, name string, parent *models.APIRepository) *models.APIRepository {
	return &models.APIRepository{
		Name:          name,
		Owner:         models.APIOwner{Login: owner},
		DefaultBranch: "main",
		CloneURL:      "https://github.com/" + owner + "/" + name + ".git",
		HTMLURL:       "https://github.com/" + owner + "/" + name,
		Parent:        parent,
	}
}
