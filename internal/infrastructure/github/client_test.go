package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gh-pr-mirror/internal/domain/models"
	"gh-pr-mirror/internal/infrastructure/config"
	"gh-pr-mirror/internal/infrastructure/logger"
	"gh-pr-mirror/internal/utils"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := NewClientFactory(config.GitHub{Host: "github.com", Token: "test-token", APIURL: srv.URL}, logger.New("test"))
	c, err := f.ForAccount(models.Account{})
	require.NoError(t, err)
	return c.(*Client)
}

func TestClient_FetchPullRequests_Paginates(t *testing.T) {
	var pages []string
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/R/pulls", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "open", r.URL.Query().Get("state"))
		require.Contains(t, r.Header.Get("Authorization"), "test-token")
		page := r.URL.Query().Get("page")
		pages = append(pages, page)
		n := 1
		if page == "1" {
			n = perPage
		}
		out := make([]models.APIPullRequest, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, models.APIPullRequest{Number: len(pages)*1000 + i, Title: "t", State: "open"})
		}
		_ = json.NewEncoder(w).Encode(out)
	})

	c := newTestClient(t, mux)
	prs, err := c.FetchPullRequests(context.Background(), "octo", "R", models.APIStateOpen)
	require.NoError(t, err)
	require.Len(t, prs, perPage+1)
	require.Equal(t, []string{"1", "2"}, pages)
}

func TestClient_FetchPullRequests_TruncatedListingFails(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/R/pulls", func(w http.ResponseWriter, r *http.Request) {
		calls++
		out := make([]models.APIPullRequest, perPage)
		for i := range out {
			out[i] = models.APIPullRequest{Number: calls*perPage + i, State: "open"}
		}
		_ = json.NewEncoder(w).Encode(out)
	})

	c := newTestClient(t, mux)
	prs, err := c.FetchPullRequests(context.Background(), "octo", "R", models.APIStateOpen)
	require.ErrorIs(t, err, utils.ErrRemoteAPI)
	require.Nil(t, prs)
	require.Equal(t, maxPages, calls)
}

func TestClient_FetchCombinedStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/R/commits/abc123/status", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"state":"failure","total_count":2,"statuses":[
			{"id":1,"state":"success","target_url":"https://ci/1","description":"ok","context":"ci/lint"},
			{"id":2,"state":"failure","target_url":"https://ci/2","description":"bad","context":"ci/test"}]}`)
	})

	c := newTestClient(t, mux)
	st, err := c.FetchCombinedStatus(context.Background(), "octo", "R", "abc123")
	require.NoError(t, err)
	require.Equal(t, "failure", st.State)
	require.Equal(t, 2, st.TotalCount)
	require.Len(t, st.Statuses, 2)
	require.Equal(t, "ci/test", st.Statuses[1].Context)
}

func TestClient_FetchIssues_Since(t *testing.T) {
	since := time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/R/issues", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "all", r.URL.Query().Get("state"))
		require.Equal(t, "2020-02-01T00:00:00Z", r.URL.Query().Get("since"))
		fmt.Fprint(w, `[{"number":3,"title":"x","state":"closed","updated_at":"2020-02-02T00:00:00Z"}]`)
	})

	c := newTestClient(t, mux)
	issues, err := c.FetchIssues(context.Background(), "octo", "R", models.APIStateAll, &since)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.Equal(t, "closed", issues[0].State)
}

func TestClient_FetchRepository_Fork(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/alice/R", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name":"R","owner":{"login":"alice"},"clone_url":"https://github.com/alice/R.git",
			"parent":{"name":"R","owner":{"login":"octo"},"clone_url":"https://github.com/octo/R.git"}}`)
	})

	c := newTestClient(t, mux)
	repo, err := c.FetchRepository(context.Background(), "alice", "R")
	require.NoError(t, err)
	require.NotNil(t, repo.Parent)
	require.Equal(t, "octo", repo.Parent.Owner.Login)
}

func TestClient_HTTPErrorWrapsRemoteAPI(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/R", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})

	c := newTestClient(t, mux)
	_, err := c.FetchRepository(context.Background(), "octo", "R")
	require.ErrorIs(t, err, utils.ErrRemoteAPI)
	require.Contains(t, err.Error(), "404")
}

func TestHostFromEndpoint(t *testing.T) {
	require.Equal(t, "github.com", HostFromEndpoint("https://api.github.com"))
	require.Equal(t, "ghe.example.com", HostFromEndpoint("https://ghe.example.com/api/v3"))
	require.Equal(t, "ghe.example.com", HostFromEndpoint("ghe.example.com"))
	require.Equal(t, "https://api.github.com", EndpointForHost("github.com"))
	require.Equal(t, "https://ghe.example.com/api/v3", EndpointForHost("ghe.example.com"))
}
