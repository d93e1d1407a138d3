package repository

import (
	"encoding/json"
	"net/http"

	"gh-pr-mirror/internal/infrastructure/http/handlers/dto"
	"gh-pr-mirror/internal/infrastructure/http/handlers/params"
	"gh-pr-mirror/internal/utils"
)

type UpdateRepositoryRequest struct {
	Path      *string `json:"path,omitempty" validate:"omitempty,min=1"`
	IsMissing *bool   `json:"is_missing,omitempty"`
}

func (h *RepositoryHandler) UpdateRepository(w http.ResponseWriter, r *http.Request) {
	var req UpdateRepositoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid json body")
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), err.Error())
		return
	}
	if req.Path == nil && req.IsMissing == nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "path or is_missing is required")
		return
	}
	repo, ok := params.LoadRepository(w, r, h.repoService, h.log)
	if !ok {
		return
	}

	id := repo.ID
	var err error
	if req.Path != nil {
		repo, err = h.repoService.UpdateRepositoryPath(r.Context(), repo, *req.Path)
	}
	if err == nil && req.IsMissing != nil {
		repo, err = h.repoService.UpdateRepositoryMissing(r.Context(), repo, *req.IsMissing)
	}
	if err != nil {
		h.log.Error("UpdateRepository service failed", "err", err, "id", id)
		_ = utils.WriteServiceError(w, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.ToRepositoryDTO(repo))
}
