package localrepo_repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gh-pr-mirror/internal/domain/models"
	repository_port "gh-pr-mirror/internal/domain/ports/output/repository"
	"gh-pr-mirror/internal/infrastructure/logger"
	repository "gh-pr-mirror/internal/infrastructure/persistence/postgres/localrepo"
	"gh-pr-mirror/internal/utils"
	"gh-pr-mirror/mocks"
)

func newRepositoryRepo(t *testing.T) (repository_port.RepositoryRepository, *mocks.Querier) {
	q := mocks.NewQuerier(t)
	return repository.NewRepositoryRepository(q, logger.New("test")), q
}

func anyArgs(n int) []interface{} {
	out := make([]interface{}, n)
	for i := range out {
		out[i] = mock.Anything
	}
	return out
}

func TestRepositoryRepository_CreateRepository(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, q := newRepositoryRepo(t)
		ctx := context.Background()
		now := time.Now().Truncate(time.Microsecond)
		r := &models.Repository{Name: "R", Path: "/src/R"}

		row := mocks.NewRow(t)
		row.EXPECT().Scan(mock.Anything, mock.Anything).Run(func(args ...interface{}) {
			*(args[0].(*time.Time)) = now
			*(args[1].(*time.Time)) = now
		}).Return(nil)
		q.EXPECT().QueryRow(ctx, mock.Anything, mock.Anything).Return(row)

		require.NoError(t, repo.CreateRepository(ctx, r))
		assert.NotEqual(t, uuid.Nil, r.ID)
		assert.Equal(t, now, r.CreatedAt)
	})

	t.Run("duplicate name and path", func(t *testing.T) {
		repo, q := newRepositoryRepo(t)
		ctx := context.Background()

		row := mocks.NewRow(t)
		row.EXPECT().Scan(mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})
		q.EXPECT().QueryRow(ctx, mock.Anything, mock.Anything).Return(row)

		err := repo.CreateRepository(ctx, &models.Repository{Name: "R", Path: "/src/R"})
		assert.ErrorIs(t, err, utils.ErrAlreadyExists)
	})

	t.Run("missing path", func(t *testing.T) {
		repo, _ := newRepositoryRepo(t)
		err := repo.CreateRepository(context.Background(), &models.Repository{Name: "R"})
		assert.ErrorIs(t, err, utils.ErrInvalidArgument)
	})
}

func TestRepositoryRepository_GetRepositoryByID(t *testing.T) {
	t.Run("resolves linked github repository", func(t *testing.T) {
		repo, q := newRepositoryRepo(t)
		ctx := context.Background()
		id, ghID := uuid.New(), uuid.New()

		row := mocks.NewRow(t)
		row.EXPECT().Scan(anyArgs(7)...).Run(func(args ...interface{}) {
			*(args[0].(*uuid.UUID)) = id
			*(args[1].(*string)) = "R"
			*(args[2].(*string)) = "/src/R"
			*(args[4].(*pgtype.UUID)) = pgtype.UUID{Bytes: ghID, Valid: true}
		}).Return(nil)
		q.EXPECT().QueryRow(ctx, mock.Anything, pgx.NamedArgs{"id": id}).Return(row).Once()

		ghRow := mocks.NewRow(t)
		ghRow.EXPECT().Scan(anyArgs(14)...).Run(func(args ...interface{}) {
			*(args[0].(*uuid.UUID)) = ghID
			*(args[1].(*string)) = "R"
			*(args[2].(*string)) = "octo"
		}).Return(nil)
		q.EXPECT().QueryRow(ctx, mock.Anything, pgx.NamedArgs{"id": ghID}).Return(ghRow).Once()

		got, err := repo.GetRepositoryByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got.GitHubRepository)
		assert.Equal(t, "octo/R", got.FullName())
		assert.Nil(t, got.GitHubRepository.Parent)
	})

	t.Run("not found", func(t *testing.T) {
		repo, q := newRepositoryRepo(t)
		ctx := context.Background()

		row := mocks.NewRow(t)
		row.EXPECT().Scan(anyArgs(7)...).Return(pgx.ErrNoRows)
		q.EXPECT().QueryRow(ctx, mock.Anything, mock.Anything).Return(row)

		_, err := repo.GetRepositoryByID(ctx, uuid.New())
		assert.ErrorIs(t, err, utils.ErrRepositoryNotFound)
	})
}

func TestRepositoryRepository_ListRepositories(t *testing.T) {
	repo, q := newRepositoryRepo(t)
	ctx := context.Background()

	rows := mocks.NewRows(t)
	rows.EXPECT().Next().Return(true).Once()
	rows.EXPECT().Scan(anyArgs(7)...).Run(func(args ...interface{}) {
		*(args[1].(*string)) = "A"
		*(args[2].(*string)) = "/src/A"
	}).Return(nil).Once()
	rows.EXPECT().Next().Return(true).Once()
	rows.EXPECT().Scan(anyArgs(7)...).Run(func(args ...interface{}) {
		*(args[1].(*string)) = "B"
		*(args[2].(*string)) = "/src/B"
		*(args[3].(*bool)) = true
	}).Return(nil).Once()
	rows.EXPECT().Next().Return(false).Once()
	rows.EXPECT().Err().Return(nil)
	rows.EXPECT().Close()

	q.EXPECT().Query(ctx, mock.Anything).Return(rows, nil)

	list, err := repo.ListRepositories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "/src/A", list[0].Path)
	assert.True(t, list[1].IsMissing)
}

func TestRepositoryRepository_Updates(t *testing.T) {
	t.Run("update path", func(t *testing.T) {
		repo, q := newRepositoryRepo(t)
		ctx := context.Background()

		q.EXPECT().Exec(ctx, mock.Anything, pgx.NamedArgs{"name": "R", "path": "/src/R", "new_path": "/new/R"}).
			Return(pgconn.NewCommandTag("UPDATE 1"), nil)
		require.NoError(t, repo.UpdatePath(ctx, "R", "/src/R", "/new/R"))
	})

	t.Run("empty new path", func(t *testing.T) {
		repo, _ := newRepositoryRepo(t)
		assert.ErrorIs(t, repo.UpdatePath(context.Background(), "R", "/src/R", ""), utils.ErrInvalidArgument)
	})

	t.Run("no matching record", func(t *testing.T) {
		repo, q := newRepositoryRepo(t)
		ctx := context.Background()

		q.EXPECT().Exec(ctx, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("UPDATE 0"), nil)
		assert.ErrorIs(t, repo.UpdateMissing(ctx, "R", "/src/R", true), utils.ErrRepositoryNotFound)
	})

	t.Run("link to unknown github repository", func(t *testing.T) {
		repo, q := newRepositoryRepo(t)
		ctx := context.Background()

		q.EXPECT().Exec(ctx, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag(""), &pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, repo.LinkGitHubRepository(ctx, "R", "/src/R", uuid.New()), utils.ErrGitHubRepositoryNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, q := newRepositoryRepo(t)
		ctx := context.Background()

		q.EXPECT().Exec(ctx, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag(""), errors.New("db error"))
		require.Error(t, repo.UpdateMissing(ctx, "R", "/src/R", false))
	})
}
