package pullrequest

import (
	"context"
	"log/slog"
	"net/http"

	"gh-pr-mirror/internal/infrastructure/http/handlers/dto"
	"gh-pr-mirror/internal/infrastructure/http/handlers/params"
	"gh-pr-mirror/internal/utils"
)

type RefreshAcceptedResponse struct {
	Repository string `json:"repository"`
	Fetching   bool   `json:"fetching"`
}

type PullRequestsResponse struct {
	Repository   string               `json:"repository"`
	PullRequests []dto.PullRequestDTO `json:"pull_requests"`
}

// RefreshPullRequests runs a refresh detached from the request context so a
// disconnecting client does not abort it. With ?async=true it answers 202
// right away.
func (h *PullRequestHandler) RefreshPullRequests(w http.ResponseWriter, r *http.Request) {
	repo, ok := params.LoadRepository(w, r, h.repoService, h.log)
	if !ok {
		return
	}
	h.log.Info("RefreshPullRequests request", slog.String("repository", repo.FullName()), slog.String("path", repo.Path))

	ctx := context.WithoutCancel(r.Context())
	if r.URL.Query().Get("async") == "true" {
		h.background.Go(func() {
			if err := h.prService.RefreshPullRequests(ctx, repo, h.account); err != nil {
				h.log.Warn("async RefreshPullRequests failed", "err", err, "repository", repo.FullName())
			}
		})
		_ = utils.WriteJSON(w, http.StatusAccepted, RefreshAcceptedResponse{Repository: repo.FullName(), Fetching: true})
		return
	}

	if err := h.prService.RefreshPullRequests(ctx, repo, h.account); err != nil {
		_ = utils.WriteServiceError(w, err)
		return
	}
	prs, err := h.prService.GetPullRequests(ctx, repo)
	if err != nil {
		h.log.Error("RefreshPullRequests read back failed", "err", err, "repository", repo.FullName())
		_ = utils.WriteServiceError(w, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, PullRequestsResponse{Repository: repo.FullName(), PullRequests: dto.ToPullRequestDTOs(prs)})
}
