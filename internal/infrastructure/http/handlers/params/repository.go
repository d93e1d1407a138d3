package params

import (
	"net/http"

	"gh-pr-mirror/internal/domain/models"
	input "gh-pr-mirror/internal/domain/ports/input"
	"gh-pr-mirror/internal/infrastructure/logger"
	"gh-pr-mirror/internal/utils"

	"github.com/go-chi/chi/v5"
)

// LoadRepository resolves the {id} URL parameter. On failure the error
// response is already written and ok is false.
func LoadRepository(w http.ResponseWriter, r *http.Request, svc input.RepositoryInputPort, log *logger.Logger) (*models.Repository, bool) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid repository id")
		return nil, false
	}
	repo, err := svc.GetRepository(r.Context(), id)
	if err != nil {
		if utils.HTTPStatusFromError(err) == http.StatusInternalServerError {
			log.Error("load repository failed", "err", err, "id", id)
		}
		_ = utils.WriteServiceError(w, err)
		return nil, false
	}
	return repo, true
}

// Query returns the q parameter used for matching.
func Query(r *http.Request) string {
	return r.URL.Query().Get("q")
}
