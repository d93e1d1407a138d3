package pullrequest

import (
	"net/http"

	"gh-pr-mirror/internal/infrastructure/http/handlers/dto"
	"gh-pr-mirror/internal/infrastructure/http/handlers/params"
	"gh-pr-mirror/internal/utils"
)

type FetchingResponse struct {
	Repository string `json:"repository"`
	Fetching   bool   `json:"fetching"`
}

// ListPullRequests returns cached pull requests, ranked against ?q= when set.
func (h *PullRequestHandler) ListPullRequests(w http.ResponseWriter, r *http.Request) {
	repo, ok := params.LoadRepository(w, r, h.repoService, h.log)
	if !ok {
		return
	}
	prs, err := h.prService.FindMatchingPullRequests(r.Context(), repo, params.Query(r))
	if err != nil {
		_ = utils.WriteServiceError(w, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, PullRequestsResponse{Repository: repo.FullName(), PullRequests: dto.ToPullRequestDTOs(prs)})
}

func (h *PullRequestHandler) IsFetching(w http.ResponseWriter, r *http.Request) {
	repo, ok := params.LoadRepository(w, r, h.repoService, h.log)
	if !ok {
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, FetchingResponse{Repository: repo.FullName(), Fetching: h.prService.IsFetchingPullRequests(repo)})
}
