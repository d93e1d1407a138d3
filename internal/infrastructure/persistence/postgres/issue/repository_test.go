package issue_repository_test

import (
	"context"
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
	issue_port "gh-pr-mirror/internal/domain/ports/output/issue"
	"gh-pr-mirror/internal/infrastructure/logger"
	repository "gh-pr-mirror/internal/infrastructure/persistence/postgres/issue"
	"gh-pr-mirror/internal/utils"
	"gh-pr-mirror/mocks"
)

func newIssueRepo(t *testing.T) (issue_port.IssueRepository, *mocks.Querier) {
	q := mocks.NewQuerier(t)
	return repository.NewIssueRepository(q, logger.New("test")), q
}

func TestIssueRepository_LatestUpdatedAt(t *testing.T) {
	id := uuid.New()

	t.Run("no cached issues", func(t *testing.T) {
		repo, q := newIssueRepo(t)
		ctx := context.Background()

		row := mocks.NewRow(t)
		row.EXPECT().Scan(mock.Anything).Return(nil)
		q.EXPECT().QueryRow(ctx, mock.Anything, pgx.NamedArgs{"github_repository_id": id}).Return(row)

		latest, err := repo.LatestUpdatedAt(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("latest timestamp", func(t *testing.T) {
		repo, q := newIssueRepo(t)
		ctx := context.Background()
		want := time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)

		row := mocks.NewRow(t)
		row.EXPECT().Scan(mock.Anything).Run(func(args ...interface{}) {
			*(args[0].(*pgtype.Timestamptz)) = pgtype.Timestamptz{Time: want, Valid: true}
		}).Return(nil)
		q.EXPECT().QueryRow(ctx, mock.Anything, mock.Anything).Return(row)

		latest, err := repo.LatestUpdatedAt(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.True(t, latest.Equal(want))
	})
}

func TestIssueRepository_Upsert(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, q := newIssueRepo(t)
		ctx := context.Background()
		stored := uuid.New()

		row := mocks.NewRow(t)
		row.EXPECT().Scan(mock.Anything).Run(func(args ...interface{}) {
			*(args[0].(*uuid.UUID)) = stored
		}).Return(nil)
		q.EXPECT().QueryRow(ctx, mock.Anything, mock.Anything).Return(row)

		is := &models.Issue{Number: 1, Title: "Crash"}
		require.NoError(t, repo.UpsertIssue(ctx, uuid.New(), is))
		assert.Equal(t, stored, is.ID)
	})

	t.Run("unknown repository", func(t *testing.T) {
		repo, q := newIssueRepo(t)
		ctx := context.Background()

		row := mocks.NewRow(t)
		row.EXPECT().Scan(mock.Anything).Return(&pgconn.PgError{Code: "23503"})
		q.EXPECT().QueryRow(ctx, mock.Anything, mock.Anything).Return(row)

		err := repo.UpsertIssue(ctx, uuid.New(), &models.Issue{Number: 1})
		assert.ErrorIs(t, err, utils.ErrGitHubRepositoryNotFound)
	})

	t.Run("invalid number", func(t *testing.T) {
		repo, _ := newIssueRepo(t)
		assert.ErrorIs(t, repo.UpsertIssue(context.Background(), uuid.New(), &models.Issue{}), utils.ErrInvalidArgument)
	})
}

func TestIssueRepository_DeleteAndList(t *testing.T) {
	id := uuid.New()

	t.Run("delete reports whether a row went away", func(t *testing.T) {
		repo, q := newIssueRepo(t)
		ctx := context.Background()
		q.EXPECT().Exec(ctx, mock.Anything, pgx.NamedArgs{"github_repository_id": id, "number": 1}).
			Return(pgconn.NewCommandTag("DELETE 1"), nil).Once()
		q.EXPECT().Exec(ctx, mock.Anything, pgx.NamedArgs{"github_repository_id": id, "number": 2}).
			Return(pgconn.NewCommandTag("DELETE 0"), nil).Once()

		ok, err := repo.DeleteIssue(ctx, id, 1)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = repo.DeleteIssue(ctx, id, 2)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("list", func(t *testing.T) {
		repo, q := newIssueRepo(t)
		ctx := context.Background()

		rows := mocks.NewRows(t)
		rows.EXPECT().Next().Return(true).Once()
		rows.EXPECT().Scan(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Run(func(args ...interface{}) {
			*(args[1].(*int)) = 1
			*(args[2].(*string)) = "Crash"
		}).Return(nil).Once()
		rows.EXPECT().Next().Return(false).Once()
		rows.EXPECT().Err().Return(nil)
		rows.EXPECT().Close()
		q.EXPECT().Query(ctx, mock.Anything, mock.Anything).Return(rows, nil)

		list, err := repo.ListIssuesByRepository(ctx, id)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Crash", list[0].Title)
	})
}
