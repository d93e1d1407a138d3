//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gh-pr-mirror/internal/infrastructure/config"
	apihttp "gh-pr-mirror/internal/infrastructure/http"
	"gh-pr-mirror/internal/infrastructure/logger"

	"github.com/stretchr/testify/require"
)

func TestRepositoryHandlers_HTTPIntegration(t *testing.T) {
	reset(t)
	s := newStack(t)
	log := logger.New("test")
	r := apihttp.NewRouter(log, apihttp.Services{
		Repositories: s.repos,
		PullRequests: s.prs,
		Issues:       s.issues,
		Remotes:      s.remotes,
		Events:       s.bus,
		Account:      s.account,
	})
	r.Setup(&config.Config{HTTPServer: config.HTTPServer{RequestTimeout: 5 * time.Second}})
	server := httptest.NewServer(r.GetRouter())
	defer server.Close()

	send := func(method, path string, body any) *http.Response {
		b, _ := json.Marshal(body)
		req, err := http.NewRequest(method, server.URL+path, bytes.NewReader(b))
		require.NoError(t, err)
		resp, err := server.Client().Do(req)
		require.NoError(t, err)
		return resp
	}

	var created struct {
		ID   string `json:"id"`
		Path string `json:"path"`
	}
	resp := send(http.MethodPost, "/repositories", map[string]string{"path": "/src/R"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	t.Run("adding the same path returns the existing record", func(t *testing.T) {
		resp := send(http.MethodPost, "/repositories", map[string]string{"path": "/src/R"})
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var again struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&again))
		require.Equal(t, created.ID, again.ID)
	})

	t.Run("move then list", func(t *testing.T) {
		resp := send(http.MethodPatch, "/repositories/"+created.ID, map[string]string{"path": "/moved/R"})
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = send(http.MethodGet, "/repositories", nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var list struct {
			Repositories []struct {
				Path string `json:"path"`
			} `json:"repositories"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list.Repositories, 1)
		require.Equal(t, "/moved/R", list.Repositories[0].Path)
	})

	t.Run("pulls of an unlinked repository", func(t *testing.T) {
		resp := send(http.MethodPost, "/repositories/"+created.ID+"/pulls/refresh", nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}
