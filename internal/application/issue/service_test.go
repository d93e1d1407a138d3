package issue_test

import (
	"context"
	"errors"
	"testing"
	"time"

	app "gh-pr-mirror/internal/application/issue"
	"gh-pr-mirror/internal/domain/models"
	"gh-pr-mirror/internal/infrastructure/logger"
	"gh-pr-mirror/internal/utils"
	"gh-pr-mirror/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deps struct {
	uow     *mocks.UnitOfWork
	tx      *mocks.Transaction
	issues  *mocks.IssueRepository
	clients *mocks.ClientFactory
	api     *mocks.API
	pub     *mocks.Publisher
}

func newDeps(t *testing.T) *deps {
	d := &deps{
		uow:     mocks.NewUnitOfWork(t),
		tx:      mocks.NewTransaction(t),
		issues:  mocks.NewIssueRepository(t),
		clients: mocks.NewClientFactory(t),
		api:     mocks.NewAPI(t),
		pub:     mocks.NewPublisher(t),
	}
	d.tx.EXPECT().IssueRepository().Maybe().Return(d.issues)
	d.tx.EXPECT().Rollback(mock.Anything).Maybe().Return(nil)
	return d
}

func (d *deps) service() *app.Service {
	return app.NewService(d.uow, d.clients, d.pub, logger.New("test")).(*app.Service)
}

func linkedRepo() *models.Repository {
	return &models.Repository{Name: "R", Path: "/src/R", GitHubRepository: &models.GitHubRepository{
		ID: uuid.New(), Name: "R", Owner: models.Owner{Login: "octo"},
	}}
}

func day(m time.Month, d int) time.Time {
	return time.Date(2020, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIssueService_ComputeSinceWatermark(t *testing.T) {
	ctx := context.Background()
	repo := linkedRepo()

	t.Run("latest cached update", func(t *testing.T) {
		d := newDeps(t)
		latest := day(time.February, 1)
		d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
		d.issues.EXPECT().LatestUpdatedAt(ctx, repo.GitHubRepository.ID).Return(&latest, nil)

		got, err := d.service().ComputeSinceWatermark(ctx, repo)
		require.NoError(t, err)
		require.Equal(t, latest, *got)
	})

	t.Run("nothing cached", func(t *testing.T) {
		d := newDeps(t)
		d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
		d.issues.EXPECT().LatestUpdatedAt(ctx, repo.GitHubRepository.ID).Return(nil, nil)

		got, err := d.service().ComputeSinceWatermark(ctx, repo)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("unlinked repository", func(t *testing.T) {
		d := newDeps(t)
		_, err := d.service().ComputeSinceWatermark(ctx, &models.Repository{Path: "/src/R"})
		require.ErrorIs(t, err, utils.ErrRepositoryNotPersisted)
	})
}

func TestIssueService_RefreshIssues(t *testing.T) {
	ctx := context.Background()
	account := models.Account{Token: "t"}

	t.Run("first refresh asks for open issues only", func(t *testing.T) {
		d := newDeps(t)
		repo := linkedRepo()
		d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
		d.issues.EXPECT().LatestUpdatedAt(ctx, repo.GitHubRepository.ID).Return(nil, nil)
		d.clients.EXPECT().ForAccount(account).Return(d.api, nil)
		d.api.EXPECT().FetchIssues(ctx, "octo", "R", models.APIStateOpen, (*time.Time)(nil)).Return([]models.APIIssue{
			{Number: 1, Title: "Fix bug", State: "open", UpdatedAt: day(time.January, 1)},
		}, nil)
		d.issues.EXPECT().UpsertIssue(ctx, repo.GitHubRepository.ID, mock.MatchedBy(func(is *models.Issue) bool {
			return is.Number == 1 && is.Title == "Fix bug"
		})).Return(nil)
		d.tx.EXPECT().Commit(ctx).Return(nil)
		d.pub.EXPECT().Publish(mock.MatchedBy(func(evt models.Event) bool { return evt.Kind == models.EventRepositoryUpdated })).Return()

		require.NoError(t, d.service().RefreshIssues(ctx, repo, account))
	})

	t.Run("incremental refresh deletes closed and skips pull requests", func(t *testing.T) {
		d := newDeps(t)
		repo := linkedRepo()
		since := day(time.February, 1)
		d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
		d.issues.EXPECT().LatestUpdatedAt(ctx, repo.GitHubRepository.ID).Return(&since, nil)
		d.clients.EXPECT().ForAccount(account).Return(d.api, nil)
		d.api.EXPECT().FetchIssues(ctx, "octo", "R", models.APIStateAll, &since).Return([]models.APIIssue{
			{Number: 2, Title: "gone", State: "closed"},
			{Number: 3, Title: "a pr", State: "open", PullRequest: &struct {
				URL string `json:"url"`
			}{URL: "https://api.github.com/repos/octo/R/pulls/3"}},
			{Number: 4, Title: "new", State: "open", UpdatedAt: day(time.February, 2)},
		}, nil)
		d.issues.EXPECT().DeleteIssue(ctx, repo.GitHubRepository.ID, 2).Return(true, nil)
		d.issues.EXPECT().UpsertIssue(ctx, repo.GitHubRepository.ID, mock.MatchedBy(func(is *models.Issue) bool { return is.Number == 4 })).Return(nil)
		d.tx.EXPECT().Commit(ctx).Return(nil)
		d.pub.EXPECT().Publish(mock.Anything).Return()

		require.NoError(t, d.service().RefreshIssues(ctx, repo, account))
	})

	t.Run("closed issue not cached is a no-op", func(t *testing.T) {
		d := newDeps(t)
		repo := linkedRepo()
		since := day(time.February, 1)
		d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
		d.issues.EXPECT().LatestUpdatedAt(ctx, repo.GitHubRepository.ID).Return(&since, nil)
		d.clients.EXPECT().ForAccount(account).Return(d.api, nil)
		d.api.EXPECT().FetchIssues(ctx, "octo", "R", models.APIStateAll, &since).Return([]models.APIIssue{
			{Number: 99, State: "closed"},
		}, nil)
		d.issues.EXPECT().DeleteIssue(ctx, repo.GitHubRepository.ID, 99).Return(false, nil)
		d.tx.EXPECT().Commit(ctx).Return(nil)
		d.pub.EXPECT().Publish(mock.Anything).Return()

		require.NoError(t, d.service().RefreshIssues(ctx, repo, account))
	})

	t.Run("api failure publishes error and writes nothing", func(t *testing.T) {
		d := newDeps(t)
		repo := linkedRepo()
		d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
		d.issues.EXPECT().LatestUpdatedAt(ctx, repo.GitHubRepository.ID).Return(nil, nil)
		d.clients.EXPECT().ForAccount(account).Return(d.api, nil)
		d.api.EXPECT().FetchIssues(ctx, "octo", "R", models.APIStateOpen, (*time.Time)(nil)).Return(nil, utils.ErrRemoteAPI)
		d.pub.EXPECT().Publish(mock.MatchedBy(func(evt models.Event) bool {
			return evt.Kind == models.EventError && errors.Is(evt.Err, utils.ErrRemoteAPI)
		})).Return()

		require.ErrorIs(t, d.service().RefreshIssues(ctx, repo, account), utils.ErrRemoteAPI)
		d.tx.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestIssueService_FindMatchingIssues(t *testing.T) {
	ctx := context.Background()
	repo := linkedRepo()

	t.Run("two tier ranking", func(t *testing.T) {
		d := newDeps(t)
		d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
		d.issues.EXPECT().ListIssuesByRepository(ctx, repo.GitHubRepository.ID).Return([]*models.Issue{
			{Number: 1, Title: "Fix bug"},
			{Number: 12, Title: "Improve docs"},
			{Number: 123, Title: "Bugfix release"},
		}, nil)

		got, err := d.service().FindMatchingIssues(ctx, repo, "1")
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, []int{1, 12, 123}, []int{got[0].Number, got[1].Number, got[2].Number})
	})

	t.Run("capped", func(t *testing.T) {
		d := newDeps(t)
		many := make([]*models.Issue, 0, 150)
		for i := 1; i <= 150; i++ {
			many = append(many, &models.Issue{Number: i, Title: "x"})
		}
		d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
		d.issues.EXPECT().ListIssuesByRepository(ctx, repo.GitHubRepository.ID).Return(many, nil)

		got, err := d.service().FindMatchingIssues(ctx, repo, "")
		require.NoError(t, err)
		require.Len(t, got, app.MaxMatches)
		require.Equal(t, 1, got[0].Number)
	})
}
