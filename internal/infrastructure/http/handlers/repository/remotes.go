package repository

import (
	"errors"
	"net/http"

	"gh-pr-mirror/internal/application/remote"
	"gh-pr-mirror/internal/infrastructure/http/handlers/dto"
	"gh-pr-mirror/internal/infrastructure/http/handlers/params"
	"gh-pr-mirror/internal/utils"
)

type PruneRemotesResponse struct {
	Removed []dto.RemoteDTO `json:"removed"`
	Error   string          `json:"error,omitempty"`
}

// PruneRemotes removes fork remotes not backing any cached open pull request.
// Partial failures still report the removed remotes.
func (h *RepositoryHandler) PruneRemotes(w http.ResponseWriter, r *http.Request) {
	repo, ok := params.LoadRepository(w, r, h.repoService, h.log)
	if !ok {
		return
	}
	open, err := h.prService.GetPullRequests(r.Context(), repo)
	if err != nil {
		_ = utils.WriteServiceError(w, err)
		return
	}
	removed, err := h.remoteService.PruneStaleForkRemotes(r.Context(), repo, open)
	resp := PruneRemotesResponse{Removed: dto.ToRemoteDTOs(removed)}
	if err != nil {
		h.log.Warn("PruneRemotes partially failed", "err", err, "path", repo.Path)
		resp.Error = err.Error()
		_ = utils.WriteJSON(w, http.StatusMultiStatus, resp)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, resp)
}

func (h *RepositoryHandler) AddUpstreamRemote(w http.ResponseWriter, r *http.Request) {
	repo, ok := params.LoadRepository(w, r, h.repoService, h.log)
	if !ok {
		return
	}
	rem, err := h.remoteService.AddUpstreamRemote(r.Context(), repo)
	if err != nil {
		var exists *remote.UpstreamAlreadyExistsError
		if errors.As(err, &exists) {
			_ = utils.WriteError(w, http.StatusConflict, utils.HTTPCodeConverter(http.StatusConflict), err.Error())
			return
		}
		_ = utils.WriteServiceError(w, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.RemoteDTO{Name: rem.Name, URL: rem.URL})
}
