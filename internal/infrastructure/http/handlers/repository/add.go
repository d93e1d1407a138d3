package repository

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"gh-pr-mirror/internal/infrastructure/http/handlers/dto"
	"gh-pr-mirror/internal/utils"
)

type GitHubRef struct {
	Owner string `json:"owner" validate:"required"`
	Name  string `json:"name" validate:"required"`
}

type AddRepositoryRequest struct {
	Path   string     `json:"path" validate:"required"`
	GitHub *GitHubRef `json:"github,omitempty"`
}

func (h *RepositoryHandler) AddRepository(w http.ResponseWriter, r *http.Request) {
	var req AddRepositoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid json body")
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), err.Error())
		return
	}

	h.log.Info("AddRepository request", slog.String("path", req.Path))

	repo, err := h.repoService.AddRepository(r.Context(), req.Path)
	if err != nil {
		h.log.Error("AddRepository service failed", "err", err, "path", req.Path)
		_ = utils.WriteServiceError(w, err)
		return
	}
	if req.GitHub != nil && repo.GitHubRepository == nil {
		repo, err = h.repoService.LinkGitHubRepository(r.Context(), repo, h.account, req.GitHub.Owner, req.GitHub.Name)
		if err != nil {
			h.log.Error("AddRepository link failed", "err", err, "owner", req.GitHub.Owner, "name", req.GitHub.Name)
			_ = utils.WriteServiceError(w, err)
			return
		}
	}
	_ = utils.WriteJSON(w, http.StatusCreated, dto.ToRepositoryDTO(repo))
}
