//go:build integration

package integration

import (
	"errors"
	"testing"
	"time"

	issueapp "gh-pr-mirror/internal/application/issue"
	prapp "gh-pr-mirror/internal/application/pullrequest"
	repoapp "gh-pr-mirror/internal/application/repository"
	"gh-pr-mirror/internal/domain/models"
	input "gh-pr-mirror/internal/domain/ports/input"
	"gh-pr-mirror/internal/infrastructure/events"
	"gh-pr-mirror/internal/infrastructure/fetchtracker"
	"gh-pr-mirror/internal/infrastructure/logger"
	"gh-pr-mirror/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stack struct {
	api     *mocks.API
	remotes *mocks.RemoteInputPort
	bus     *events.Bus
	repos   input.RepositoryInputPort
	prs     input.PullRequestInputPort
	issues  input.IssueInputPort
	account models.Account
}

func newStack(t *testing.T) *stack {
	log := logger.New("test")
	api := mocks.NewAPI(t)
	clients := mocks.NewClientFactory(t)
	clients.EXPECT().ForAccount(mock.Anything).Return(api, nil).Maybe()
	remotes := mocks.NewRemoteInputPort(t)
	bus := events.NewBus(64, log)
	u := newUOW()
	return &stack{
		api:     api,
		remotes: remotes,
		bus:     bus,
		repos:   repoapp.NewService(u, clients, bus, log),
		prs:     prapp.NewService(u, clients, fetchtracker.NewTracker(bus), remotes, bus, log),
		issues:  issueapp.NewService(u, clients, bus, log),
		account: models.Account{Login: "me", Endpoint: endpoint},
	}
}

func (s *stack) linkedRepository(t *testing.T) *models.Repository {
	repo, err := s.repos.AddRepository(testCtx, "/src/R")
	require.NoError(t, err)
	s.api.EXPECT().FetchRepository(mock.Anything, "octo", "R").Return(apiRepo("octo", "R", nil), nil).Once()
	repo, err = s.repos.LinkGitHubRepository(testCtx, repo, s.account, "octo", "R")
	require.NoError(t, err)
	return repo
}

func openPR(number int, sha string, head *models.APIRepository) models.APIPullRequest {
	return models.APIPullRequest{
		Number:    number,
		Title:     "PR",
		State:     models.APIStateOpen,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		User:      models.APIUser{Login: head.Owner.Login},
		Head:      models.APIRef{Ref: "feature", SHA: sha, Repo: head},
		Base:      models.APIRef{Ref: "main", SHA: "base", Repo: apiRepo("octo", "R", nil)},
	}
}

func TestRefreshPullRequests_Integration(t *testing.T) {
	reset(t)
	s := newStack(t)
	repo := s.linkedRepository(t)

	// First listing: #5 from a fork, #7 from the repository itself.
	s.api.EXPECT().FetchPullRequests(mock.Anything, "octo", "R", models.APIStateOpen).Return([]models.APIPullRequest{
		openPR(5, "abc123", apiRepo("alice", "R", nil)),
		openPR(7, "def456", apiRepo("octo", "R", nil)),
	}, nil).Once()
	s.api.EXPECT().FetchCombinedStatus(mock.Anything, "octo", "R", "abc123").
		Return(&models.APICombinedStatus{State: "success", TotalCount: 1, Statuses: []models.APIStatus{{State: "success", Context: "ci"}}}, nil).Once()
	s.api.EXPECT().FetchCombinedStatus(mock.Anything, "octo", "R", "def456").
		Return(&models.APICombinedStatus{State: "pending"}, nil).Once()
	s.remotes.EXPECT().PruneStaleForkRemotes(mock.Anything, repo, mock.Anything).Return([]models.Remote{}, nil).Once()

	require.NoError(t, s.prs.RefreshPullRequests(testCtx, repo, s.account))
	require.False(t, s.prs.IsFetchingPullRequests(repo))

	prs, err := s.prs.GetPullRequests(testCtx, repo)
	require.NoError(t, err)
	require.Len(t, prs, 2)
	require.Equal(t, 7, prs[0].Number)
	require.Equal(t, 5, prs[1].Number)
	require.Equal(t, "alice/R", prs[1].Head.Repository.FullName())
	require.Equal(t, models.StatusSuccess, prs[1].Status.State)
	require.Equal(t, models.StatusPending, prs[0].Status.State)

	// Second listing: #5 was closed upstream and is absent.
	s.api.EXPECT().FetchPullRequests(mock.Anything, "octo", "R", models.APIStateOpen).Return([]models.APIPullRequest{
		openPR(7, "def456", apiRepo("octo", "R", nil)),
	}, nil).Once()
	s.api.EXPECT().FetchCombinedStatus(mock.Anything, "octo", "R", "def456").
		Return(&models.APICombinedStatus{State: "success"}, nil).Once()
	s.remotes.EXPECT().PruneStaleForkRemotes(mock.Anything, repo, mock.Anything).
		Return([]models.Remote{}, nil).Once()

	require.NoError(t, s.prs.RefreshPullRequests(testCtx, repo, s.account))
	prs, err = s.prs.GetPullRequests(testCtx, repo)
	require.NoError(t, err)
	require.Len(t, prs, 1)
	require.Equal(t, 7, prs[0].Number)
	require.Equal(t, models.StatusSuccess, prs[0].Status.State)
}

func TestRefreshPullRequests_APIFailureKeepsCache_Integration(t *testing.T) {
	reset(t)
	s := newStack(t)
	repo := s.linkedRepository(t)
	require.NoError(t, s.prs.UpsertOpenAndPruneClosed(testCtx, repo, s.account, []models.APIPullRequest{
		openPR(3, "aaa", apiRepo("octo", "R", nil)),
	}))

	ch, cancel := s.bus.Subscribe()
	defer cancel()

	s.api.EXPECT().FetchPullRequests(mock.Anything, "octo", "R", models.APIStateOpen).Return(nil, errors.New("502 bad gateway")).Once()
	require.Error(t, s.prs.RefreshPullRequests(testCtx, repo, s.account))
	require.False(t, s.prs.IsFetchingPullRequests(repo))

	prs, err := s.prs.GetPullRequests(testCtx, repo)
	require.NoError(t, err)
	require.Len(t, prs, 1)

	var kinds []models.EventKind
	for len(ch) > 0 {
		kinds = append(kinds, (<-ch).Kind)
	}
	require.Contains(t, kinds, models.EventError)
}

func TestRefreshIssues_Integration(t *testing.T) {
	reset(t)
	s := newStack(t)
	repo := s.linkedRepository(t)
	t1 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)

	s.api.EXPECT().FetchIssues(mock.Anything, "octo", "R", models.APIStateOpen, (*time.Time)(nil)).Return([]models.APIIssue{
		{Number: 1, Title: "Crash", State: "open", UpdatedAt: t1},
		{Number: 2, Title: "Leak", State: "open", UpdatedAt: t2},
	}, nil).Once()
	require.NoError(t, s.issues.RefreshIssues(testCtx, repo, s.account))

	since, err := s.issues.ComputeSinceWatermark(testCtx, repo)
	require.NoError(t, err)
	require.True(t, since.Equal(t2))

	s.api.EXPECT().FetchIssues(mock.Anything, "octo", "R", models.APIStateAll, mock.MatchedBy(func(ts *time.Time) bool {
		return ts != nil && ts.Equal(t2)
	})).Return([]models.APIIssue{
		{Number: 1, Title: "Crash", State: "closed", UpdatedAt: t2.Add(time.Hour)},
	}, nil).Once()
	require.NoError(t, s.issues.RefreshIssues(testCtx, repo, s.account))

	issues, err := s.issues.GetIssues(testCtx, repo)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.Equal(t, 2, issues[0].Number)
}
