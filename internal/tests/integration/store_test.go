//go:build integration

package integration

import (
	"testing"
	"time"

	repoapp "gh-pr-mirror/internal/application/repository"
	"gh-pr-mirror/internal/domain/models"
	"gh-pr-mirror/internal/domain/ports/output/uow"
	"gh-pr-mirror/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const endpoint = "https://api.github.com"

func TestRepositoryStore_Integration(t *testing.T) {
	t.Run("create is unique per name and path", func(t *testing.T) {
		reset(t)
		inTx(t, func(tx uow.Transaction) {
			require.NoError(t, tx.RepositoryRepository().CreateRepository(testCtx, &models.Repository{Name: "R", Path: "/src/R"}))
		})
		tx, err := newUOW().Begin(testCtx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(testCtx) }()
		err = tx.RepositoryRepository().CreateRepository(testCtx, &models.Repository{Name: "R", Path: "/src/R"})
		require.ErrorIs(t, err, utils.ErrAlreadyExists)
	})

	t.Run("update path and missing", func(t *testing.T) {
		reset(t)
		inTx(t, func(tx uow.Transaction) {
			store := tx.RepositoryRepository()
			require.NoError(t, store.CreateRepository(testCtx, &models.Repository{Name: "R", Path: "/src/R"}))
			require.NoError(t, store.UpdateMissing(testCtx, "R", "/src/R", true))
			require.NoError(t, store.UpdatePath(testCtx, "R", "/src/R", "/new/R"))
		})
		inTx(t, func(tx uow.Transaction) {
			got, err := tx.RepositoryRepository().GetRepositoryByPath(testCtx, "/new/R")
			require.NoError(t, err)
			require.True(t, got.IsMissing)
			_, err = tx.RepositoryRepository().GetRepositoryByPath(testCtx, "/src/R")
			require.ErrorIs(t, err, utils.ErrRepositoryNotFound)
		})
	})

	t.Run("fork lineage resolves on read", func(t *testing.T) {
		reset(t)
		var forkID, upstreamID uuid.UUID
		inTx(t, func(tx uow.Transaction) {
			saved, err := repoapp.SaveGitHubRepository(testCtx, tx.GitHubRepositoryRepository(), endpoint,
				apiRepo("me", "R", apiRepo("octo", "R", nil)))
			require.NoError(t, err)
			require.NotNil(t, saved.ParentID)
			forkID, upstreamID = saved.ID, *saved.ParentID
		})
		inTx(t, func(tx uow.Transaction) {
			got, err := tx.GitHubRepositoryRepository().GetGitHubRepositoryByID(testCtx, forkID)
			require.NoError(t, err)
			require.Equal(t, "me/R", got.FullName())
			require.NotNil(t, got.Parent)
			require.Equal(t, upstreamID, got.Parent.ID)
			require.Equal(t, "octo/R", got.Parent.FullName())
		})
	})

	t.Run("upsert without parent keeps stored lineage", func(t *testing.T) {
		reset(t)
		var forkID uuid.UUID
		inTx(t, func(tx uow.Transaction) {
			saved, err := repoapp.SaveGitHubRepository(testCtx, tx.GitHubRepositoryRepository(), endpoint,
				apiRepo("me", "R", apiRepo("octo", "R", nil)))
			require.NoError(t, err)
			forkID = saved.ID
		})
		inTx(t, func(tx uow.Transaction) {
			again, err := repoapp.SaveGitHubRepository(testCtx, tx.GitHubRepositoryRepository(), endpoint, apiRepo("me", "R", nil))
			require.NoError(t, err)
			require.Equal(t, forkID, again.ID)
			require.NotNil(t, again.ParentID)
		})
	})
}

func TestPullRequestStore_Integration(t *testing.T) {
	seed := func(t *testing.T) *models.GitHubRepository {
		var gh *models.GitHubRepository
		inTx(t, func(tx uow.Transaction) {
			var err error
			gh, err = repoapp.SaveGitHubRepository(testCtx, tx.GitHubRepositoryRepository(), endpoint, apiRepo("octo", "R", nil))
			require.NoError(t, err)
		})
		return gh
	}
	pr := func(gh *models.GitHubRepository, number int, sha string) *models.PullRequest {
		return &models.PullRequest{
			Number:    number,
			Title:     "PR",
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Author:    "alice",
			Head:      models.PullRequestRef{Ref: "feature", SHA: sha, RepositoryID: &gh.ID},
			Base:      models.PullRequestRef{Ref: "main", SHA: "base", RepositoryID: &gh.ID},
		}
	}

	t.Run("upsert replaces by number", func(t *testing.T) {
		reset(t)
		gh := seed(t)
		first := pr(gh, 5, "abc123")
		inTx(t, func(tx uow.Transaction) {
			require.NoError(t, tx.PullRequestRepository().UpsertPullRequest(testCtx, first))
			second := pr(gh, 5, "fff000")
			second.Title = "Renamed"
			require.NoError(t, tx.PullRequestRepository().UpsertPullRequest(testCtx, second))
			require.Equal(t, first.ID, second.ID)
		})
		inTx(t, func(tx uow.Transaction) {
			list, err := tx.PullRequestRepository().ListPullRequestsByRepository(testCtx, gh.ID)
			require.NoError(t, err)
			require.Len(t, list, 1)
			require.Equal(t, "Renamed", list[0].Title)
			require.Equal(t, "fff000", list[0].Head.SHA)
		})
	})

	t.Run("delete except keeps listed numbers", func(t *testing.T) {
		reset(t)
		gh := seed(t)
		inTx(t, func(tx uow.Transaction) {
			for _, n := range []int{3, 5, 7} {
				require.NoError(t, tx.PullRequestRepository().UpsertPullRequest(testCtx, pr(gh, n, "sha")))
			}
			n, err := tx.PullRequestRepository().DeletePullRequestsExcept(testCtx, gh.ID, []int{5, 7})
			require.NoError(t, err)
			require.EqualValues(t, 1, n)
		})
		inTx(t, func(tx uow.Transaction) {
			list, err := tx.PullRequestRepository().ListPullRequestsByRepository(testCtx, gh.ID)
			require.NoError(t, err)
			require.Len(t, list, 2)
			require.Equal(t, 7, list[0].Number)
			require.Equal(t, 5, list[1].Number)
		})
	})

	t.Run("delete of an uncached number is a no-op", func(t *testing.T) {
		reset(t)
		gh := seed(t)
		inTx(t, func(tx uow.Transaction) {
			ok, err := tx.PullRequestRepository().DeletePullRequest(testCtx, gh.ID, 42)
			require.NoError(t, err)
			require.False(t, ok)
		})
	})

	t.Run("status is unique per sha and pull request", func(t *testing.T) {
		reset(t)
		gh := seed(t)
		p := pr(gh, 5, "abc123")
		inTx(t, func(tx uow.Transaction) {
			store := tx.PullRequestRepository()
			require.NoError(t, store.UpsertPullRequest(testCtx, p))
			require.NoError(t, store.UpsertPullRequestStatus(testCtx, &models.PullRequestStatus{
				PullRequestID: p.ID, SHA: "abc123", State: models.StatusPending, TotalCount: 1,
				Statuses: []models.StatusCheck{{State: models.StatusPending, Context: "ci"}},
			}))
			require.NoError(t, store.UpsertPullRequestStatus(testCtx, &models.PullRequestStatus{
				PullRequestID: p.ID, SHA: "abc123", State: models.StatusSuccess, TotalCount: 1,
				Statuses: []models.StatusCheck{{State: models.StatusSuccess, Context: "ci"}},
			}))
		})
		inTx(t, func(tx uow.Transaction) {
			st, err := tx.PullRequestRepository().FindPullRequestStatus(testCtx, "abc123", p.ID)
			require.NoError(t, err)
			require.Equal(t, models.StatusSuccess, st.State)
			require.Len(t, st.Statuses, 1)

			_, err = tx.PullRequestRepository().FindPullRequestStatus(testCtx, "other", p.ID)
			require.ErrorIs(t, err, utils.ErrStatusNotFound)
		})
	})
}

func TestIssueStore_Integration(t *testing.T) {
	reset(t)
	var gh *models.GitHubRepository
	inTx(t, func(tx uow.Transaction) {
		var err error
		gh, err = repoapp.SaveGitHubRepository(testCtx, tx.GitHubRepositoryRepository(), endpoint, apiRepo("octo", "R", nil))
		require.NoError(t, err)

		latest, err := tx.IssueRepository().LatestUpdatedAt(testCtx, gh.ID)
		require.NoError(t, err)
		require.Nil(t, latest)
	})

	newer := time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)
	inTx(t, func(tx uow.Transaction) {
		store := tx.IssueRepository()
		require.NoError(t, store.UpsertIssue(testCtx, gh.ID, &models.Issue{Number: 1, Title: "Crash", UpdatedAt: newer.AddDate(0, -1, 0)}))
		require.NoError(t, store.UpsertIssue(testCtx, gh.ID, &models.Issue{Number: 2, Title: "Leak", UpdatedAt: newer}))
		ok, err := store.DeleteIssue(testCtx, gh.ID, 1)
		require.NoError(t, err)
		require.True(t, ok)
	})
	inTx(t, func(tx uow.Transaction) {
		latest, err := tx.IssueRepository().LatestUpdatedAt(testCtx, gh.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		require.True(t, latest.Equal(newer))

		list, err := tx.IssueRepository().ListIssuesByRepository(testCtx, gh.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "Leak", list[0].Title)
	})
}
