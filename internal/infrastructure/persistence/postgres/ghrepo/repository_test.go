package ghrepo_repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gh-pr-mirror/internal/domain/models"
	ghrepo_port "gh-pr-mirror/internal/domain/ports/output/ghrepository"
	"gh-pr-mirror/internal/infrastructure/logger"
	repository "gh-pr-mirror/internal/infrastructure/persistence/postgres/ghrepo"
	"gh-pr-mirror/internal/utils"
	"gh-pr-mirror/mocks"
)

func newGitHubRepo(t *testing.T) (ghrepo_port.GitHubRepositoryRepository, *mocks.Querier) {
	q := mocks.NewQuerier(t)
	return repository.NewGitHubRepositoryRepository(q, logger.New("test")), q
}

func anyArgs(n int) []interface{} {
	out := make([]interface{}, n)
	for i := range out {
		out[i] = mock.Anything
	}
	return out
}

// recordRow returns a row holding the record id/login/name with an optional parent.
func recordRow(t *testing.T, id uuid.UUID, login, name string, parent *uuid.UUID) *mocks.Row {
	row := mocks.NewRow(t)
	row.EXPECT().Scan(anyArgs(14)...).Run(func(args ...interface{}) {
		*(args[0].(*uuid.UUID)) = id
		*(args[1].(*string)) = name
		*(args[2].(*string)) = login
		if parent != nil {
			*(args[11].(*pgtype.UUID)) = pgtype.UUID{Bytes: *parent, Valid: true}
		}
	}).Return(nil)
	return row
}

func TestGitHubRepositoryRepository_Upsert(t *testing.T) {
	t.Run("success keeps stored parent", func(t *testing.T) {
		repo, q := newGitHubRepo(t)
		ctx := context.Background()
		storedID, parentID := uuid.New(), uuid.New()
		r := &models.GitHubRepository{Name: "R", Owner: models.Owner{Login: "me"}}

		row := mocks.NewRow(t)
		row.EXPECT().Scan(anyArgs(4)...).Run(func(args ...interface{}) {
			*(args[0].(*uuid.UUID)) = storedID
			*(args[1].(*pgtype.UUID)) = pgtype.UUID{Bytes: parentID, Valid: true}
		}).Return(nil)
		q.EXPECT().QueryRow(ctx, mock.Anything, mock.MatchedBy(func(a pgx.NamedArgs) bool {
			return a["owner_login"] == "me" && a["name"] == "R" && !a["parent_id"].(pgtype.UUID).Valid
		})).Return(row)

		require.NoError(t, repo.UpsertGitHubRepository(ctx, r))
		assert.Equal(t, storedID, r.ID)
		require.NotNil(t, r.ParentID)
		assert.Equal(t, parentID, *r.ParentID)
	})

	t.Run("unknown parent", func(t *testing.T) {
		repo, q := newGitHubRepo(t)
		ctx := context.Background()
		parentID := uuid.New()

		row := mocks.NewRow(t)
		row.EXPECT().Scan(anyArgs(4)...).Return(&pgconn.PgError{Code: "23503"})
		q.EXPECT().QueryRow(ctx, mock.Anything, mock.Anything).Return(row)

		err := repo.UpsertGitHubRepository(ctx, &models.GitHubRepository{Name: "R", Owner: models.Owner{Login: "me"}, ParentID: &parentID})
		assert.ErrorIs(t, err, utils.ErrGitHubRepositoryNotFound)
	})

	t.Run("missing owner", func(t *testing.T) {
		repo, _ := newGitHubRepo(t)
		err := repo.UpsertGitHubRepository(context.Background(), &models.GitHubRepository{Name: "R"})
		assert.ErrorIs(t, err, utils.ErrInvalidArgument)
	})
}

func TestGitHubRepositoryRepository_GetByID(t *testing.T) {
	t.Run("resolves parent chain", func(t *testing.T) {
		repo, q := newGitHubRepo(t)
		ctx := context.Background()
		fork, upstream := uuid.New(), uuid.New()

		q.EXPECT().QueryRow(ctx, mock.Anything, pgx.NamedArgs{"id": fork}).Return(recordRow(t, fork, "me", "R", &upstream))
		q.EXPECT().QueryRow(ctx, mock.Anything, pgx.NamedArgs{"id": upstream}).Return(recordRow(t, upstream, "octo", "R", nil))

		got, err := repo.GetGitHubRepositoryByID(ctx, fork)
		require.NoError(t, err)
		require.NotNil(t, got.Parent)
		assert.Equal(t, "octo/R", got.Parent.FullName())
		assert.Nil(t, got.Parent.Parent)
	})

	t.Run("stops on a cycle", func(t *testing.T) {
		repo, q := newGitHubRepo(t)
		ctx := context.Background()
		a, b := uuid.New(), uuid.New()

		q.EXPECT().QueryRow(ctx, mock.Anything, pgx.NamedArgs{"id": a}).Return(recordRow(t, a, "a", "R", &b)).Once()
		q.EXPECT().QueryRow(ctx, mock.Anything, pgx.NamedArgs{"id": b}).Return(recordRow(t, b, "b", "R", &a)).Once()

		got, err := repo.GetGitHubRepositoryByID(ctx, a)
		require.NoError(t, err)
		assert.Equal(t, b, got.Parent.ID)
		assert.Same(t, got, got.Parent.Parent)
	})

	t.Run("missing parent row ends the chain", func(t *testing.T) {
		repo, q := newGitHubRepo(t)
		ctx := context.Background()
		fork, gone := uuid.New(), uuid.New()

		missing := mocks.NewRow(t)
		missing.EXPECT().Scan(anyArgs(14)...).Return(pgx.ErrNoRows)
		q.EXPECT().QueryRow(ctx, mock.Anything, pgx.NamedArgs{"id": fork}).Return(recordRow(t, fork, "me", "R", &gone))
		q.EXPECT().QueryRow(ctx, mock.Anything, pgx.NamedArgs{"id": gone}).Return(missing)

		got, err := repo.GetGitHubRepositoryByID(ctx, fork)
		require.NoError(t, err)
		assert.Nil(t, got.Parent)
	})

	t.Run("not found", func(t *testing.T) {
		repo, q := newGitHubRepo(t)
		ctx := context.Background()

		row := mocks.NewRow(t)
		row.EXPECT().Scan(anyArgs(14)...).Return(pgx.ErrNoRows)
		q.EXPECT().QueryRow(ctx, mock.Anything, mock.Anything).Return(row)

		_, err := repo.GetGitHubRepositoryByID(ctx, uuid.New())
		assert.ErrorIs(t, err, utils.ErrGitHubRepositoryNotFound)
	})
}
