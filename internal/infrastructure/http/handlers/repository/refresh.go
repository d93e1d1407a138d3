package repository

import (
	"encoding/json"
	"net/http"

	"gh-pr-mirror/internal/infrastructure/http/handlers/dto"
	"gh-pr-mirror/internal/infrastructure/http/handlers/params"
	"gh-pr-mirror/internal/utils"
)

// RefreshRepository re-reads the linked GitHub repository metadata.
func (h *RepositoryHandler) RefreshRepository(w http.ResponseWriter, r *http.Request) {
	repo, ok := params.LoadRepository(w, r, h.repoService, h.log)
	if !ok {
		return
	}
	updated, err := h.repoService.RefreshGitHubRepository(r.Context(), repo, h.account)
	if err != nil {
		h.log.Warn("RefreshRepository failed", "err", err, "repository", repo.FullName())
		_ = utils.WriteServiceError(w, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToRepositoryDTO(updated))
}

func (h *RepositoryHandler) LinkRepository(w http.ResponseWriter, r *http.Request) {
	var req GitHubRef
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid json body")
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), err.Error())
		return
	}
	repo, ok := params.LoadRepository(w, r, h.repoService, h.log)
	if !ok {
		return
	}
	updated, err := h.repoService.LinkGitHubRepository(r.Context(), repo, h.account, req.Owner, req.Name)
	if err != nil {
		h.log.Warn("LinkRepository failed", "err", err, "owner", req.Owner, "name", req.Name)
		_ = utils.WriteServiceError(w, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToRepositoryDTO(updated))
}
