package http_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gh-pr-mirror/internal/domain/models"
	"gh-pr-mirror/internal/infrastructure/config"
	bus "gh-pr-mirror/internal/infrastructure/events"
	mirrorhttp "gh-pr-mirror/internal/infrastructure/http"
	"gh-pr-mirror/internal/infrastructure/logger"
	"gh-pr-mirror/internal/utils"
	"gh-pr-mirror/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repos   *mocks.RepositoryInputPort
	prs     *mocks.PullRequestInputPort
	issues  *mocks.IssueInputPort
	remotes *mocks.RemoteInputPort
	bus     *bus.Bus
	router  *mirrorhttp.Router
	handler http.Handler
}

func newFixture(t *testing.T) *fixture {
	log := logger.New("test")
	f := &fixture{
		repos:   mocks.NewRepositoryInputPort(t),
		prs:     mocks.NewPullRequestInputPort(t),
		issues:  mocks.NewIssueInputPort(t),
		remotes: mocks.NewRemoteInputPort(t),
		bus:     bus.NewBus(8, log),
	}
	r := mirrorhttp.NewRouter(log, mirrorhttp.Services{
		Repositories: f.repos,
		PullRequests: f.prs,
		Issues:       f.issues,
		Remotes:      f.remotes,
		Events:       f.bus,
		Account:      models.Account{Login: "me"},
	})
	r.Setup(&config.Config{HTTPServer: config.HTTPServer{RequestTimeout: 5 * time.Second}})
	f.router = r
	f.handler = r.GetRouter()
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func linked() *models.Repository {
	return &models.Repository{ID: uuid.New(), Name: "R", Path: "/src/R", GitHubRepository: &models.GitHubRepository{
		ID: uuid.New(), Name: "R", Owner: models.Owner{Login: "octo"},
	}}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	var resp utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error.Code
}

func TestRouter_AddRepository(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newFixture(t)
		repo := &models.Repository{ID: uuid.New(), Name: "R", Path: "/src/R"}
		f.repos.EXPECT().AddRepository(mock.Anything, "/src/R").Return(repo, nil)

		rec := f.do(http.MethodPost, "/repositories", `{"path":"/src/R"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		var body map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.Equal(t, "R", body["full_name"])
	})

	t.Run("links github repository", func(t *testing.T) {
		f := newFixture(t)
		repo := &models.Repository{ID: uuid.New(), Name: "R", Path: "/src/R"}
		f.repos.EXPECT().AddRepository(mock.Anything, "/src/R").Return(repo, nil)
		f.repos.EXPECT().LinkGitHubRepository(mock.Anything, repo, models.Account{Login: "me"}, "octo", "R").Return(linked(), nil)

		rec := f.do(http.MethodPost, "/repositories", `{"path":"/src/R","github":{"owner":"octo","name":"R"}}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing path", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, "/repositories", `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "BAD_REQUEST", errorCode(t, rec))
	})

	t.Run("invalid json", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, "/repositories", `{`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_GetRepository(t *testing.T) {
	t.Run("bad id", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodGet, "/repositories/not-a-uuid", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.repos.EXPECT().GetRepository(mock.Anything, id).Return(nil, utils.ErrRepositoryNotFound)
		rec := f.do(http.MethodGet, "/repositories/"+id.String(), "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "NOT_FOUND", errorCode(t, rec))
	})
}

func TestRouter_UpdateRepository(t *testing.T) {
	f := newFixture(t)
	repo := linked()
	moved := *repo
	moved.Path = "/new/R"
	f.repos.EXPECT().GetRepository(mock.Anything, repo.ID).Return(repo, nil)
	f.repos.EXPECT().UpdateRepositoryPath(mock.Anything, repo, "/new/R").Return(&moved, nil)

	rec := f.do(http.MethodPatch, "/repositories/"+repo.ID.String(), `{"path":"/new/R"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"path":"/new/R"`)
}

func TestRouter_PullRequests(t *testing.T) {
	t.Run("list with query", func(t *testing.T) {
		f := newFixture(t)
		repo := linked()
		f.repos.EXPECT().GetRepository(mock.Anything, repo.ID).Return(repo, nil)
		f.prs.EXPECT().FindMatchingPullRequests(mock.Anything, repo, "bug").Return([]*models.PullRequest{
			{ID: uuid.New(), Number: 1, Title: "Fix bug"},
		}, nil)

		rec := f.do(http.MethodGet, "/repositories/"+repo.ID.String()+"/pulls?q=bug", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"title":"Fix bug"`)
	})

	t.Run("refresh remote failure", func(t *testing.T) {
		f := newFixture(t)
		repo := linked()
		f.repos.EXPECT().GetRepository(mock.Anything, repo.ID).Return(repo, nil)
		f.prs.EXPECT().RefreshPullRequests(mock.Anything, repo, mock.Anything).Return(utils.ErrRemoteAPI)

		rec := f.do(http.MethodPost, "/repositories/"+repo.ID.String()+"/pulls/refresh", "")
		require.Equal(t, http.StatusBadGateway, rec.Code)
		require.Equal(t, "REMOTE_API", errorCode(t, rec))
	})

	t.Run("async refresh is awaited by the router", func(t *testing.T) {
		f := newFixture(t)
		repo := linked()
		release := make(chan struct{})
		f.repos.EXPECT().GetRepository(mock.Anything, repo.ID).Return(repo, nil)
		f.prs.EXPECT().RefreshPullRequests(mock.Anything, repo, mock.Anything).
			Run(func(ctx context.Context, _ *models.Repository, _ models.Account) { <-release }).
			Return(nil)

		rec := f.do(http.MethodPost, "/repositories/"+repo.ID.String()+"/pulls/refresh?async=true", "")
		require.Equal(t, http.StatusAccepted, rec.Code)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		require.ErrorIs(t, f.router.WaitBackground(ctx), context.DeadlineExceeded)

		close(release)
		require.NoError(t, f.router.WaitBackground(context.Background()))
	})

	t.Run("refresh unlinked repository", func(t *testing.T) {
		f := newFixture(t)
		repo := &models.Repository{ID: uuid.New(), Name: "R", Path: "/src/R"}
		f.repos.EXPECT().GetRepository(mock.Anything, repo.ID).Return(repo, nil)
		f.prs.EXPECT().RefreshPullRequests(mock.Anything, repo, mock.Anything).Return(utils.ErrNotGitHubRepository)

		rec := f.do(http.MethodPost, "/repositories/"+repo.ID.String()+"/pulls/refresh", "")
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("fetching state", func(t *testing.T) {
		f := newFixture(t)
		repo := linked()
		f.repos.EXPECT().GetRepository(mock.Anything, repo.ID).Return(repo, nil)
		f.prs.EXPECT().IsFetchingPullRequests(repo).Return(true)

		rec := f.do(http.MethodGet, "/repositories/"+repo.ID.String()+"/pulls/fetching", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"fetching":true`)
	})
}

func TestRouter_PruneRemotes_PartialFailure(t *testing.T) {
	f := newFixture(t)
	repo := linked()
	f.repos.EXPECT().GetRepository(mock.Anything, repo.ID).Return(repo, nil)
	f.prs.EXPECT().GetPullRequests(mock.Anything, repo).Return([]*models.PullRequest{}, nil)
	f.remotes.EXPECT().PruneStaleForkRemotes(mock.Anything, repo, mock.Anything).
		Return([]models.Remote{{Name: "fork-bob", URL: "u"}}, errors.Join(utils.ErrRemoteRemoval))

	rec := f.do(http.MethodPost, "/repositories/"+repo.ID.String()+"/remotes/prune", "")
	require.Equal(t, http.StatusMultiStatus, rec.Code)
	require.Contains(t, rec.Body.String(), "fork-bob")
}

func TestRouter_Issues(t *testing.T) {
	f := newFixture(t)
	repo := linked()
	f.repos.EXPECT().GetRepository(mock.Anything, repo.ID).Return(repo, nil)
	f.issues.EXPECT().FindMatchingIssues(mock.Anything, repo, "").Return([]*models.Issue{{Number: 3, Title: "Crash"}}, nil)

	rec := f.do(http.MethodGet, "/repositories/"+repo.ID.String()+"/issues", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"number":3`)
}

func TestRouter_EventStream(t *testing.T) {
	f := newFixture(t)
	srv := httptest.NewServer(f.handler)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	require.Eventually(t, func() bool { return f.bus.Subscribers() == 1 }, time.Second, 10*time.Millisecond)
	f.bus.Publish(models.Event{Kind: models.EventFetchState, RepositoryKey: "octo/R-/src/R", Fetching: true, At: time.Now()})

	sc := bufio.NewScanner(resp.Body)
	require.True(t, sc.Scan())
	require.Equal(t, "event: fetch.state", sc.Text())
	require.True(t, sc.Scan())
	require.Contains(t, sc.Text(), `"fetching":true`)
}
