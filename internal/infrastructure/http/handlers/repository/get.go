package repository

import (
	"net/http"

	"gh-pr-mirror/internal/infrastructure/http/handlers/dto"
	"gh-pr-mirror/internal/infrastructure/http/handlers/params"
	"gh-pr-mirror/internal/utils"
)

type ListRepositoriesResponse struct {
	Repositories []dto.RepositoryDTO `json:"repositories"`
}

func (h *RepositoryHandler) ListRepositories(w http.ResponseWriter, r *http.Request) {
	repos, err := h.repoService.GetAll(r.Context())
	if err != nil {
		h.log.Error("ListRepositories service failed", "err", err)
		_ = utils.WriteServiceError(w, err)
		return
	}
	resp := ListRepositoriesResponse{Repositories: make([]dto.RepositoryDTO, 0, len(repos))}
	for _, repo := range repos {
		resp.Repositories = append(resp.Repositories, dto.ToRepositoryDTO(repo))
	}
	_ = utils.WriteJSON(w, http.StatusOK, resp)
}

func (h *RepositoryHandler) GetRepository(w http.ResponseWriter, r *http.Request) {
	repo, ok := params.LoadRepository(w, r, h.repoService, h.log)
	if !ok {
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToRepositoryDTO(repo))
}
