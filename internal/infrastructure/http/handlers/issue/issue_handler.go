package issue

import (
	"net/http"

	"gh-pr-mirror/internal/domain/models"
	input "gh-pr-mirror/internal/domain/ports/input"
	"gh-pr-mirror/internal/infrastructure/http/handlers/dto"
	"gh-pr-mirror/internal/infrastructure/http/handlers/params"
	"gh-pr-mirror/internal/infrastructure/logger"
	"gh-pr-mirror/internal/utils"
)

type IssueHandler struct {
	repoService  input.RepositoryInputPort
	issueService input.IssueInputPort
	account      models.Account
	log          *logger.Logger
}

func NewIssueHandler(repoSvc input.RepositoryInputPort, issueSvc input.IssueInputPort, account models.Account, log *logger.Logger) *IssueHandler {
	return &IssueHandler{repoService: repoSvc, issueService: issueSvc, account: account, log: log}
}

type IssuesResponse struct {
	Repository string         `json:"repository"`
	Issues     []dto.IssueDTO `json:"issues"`
}

func (h *IssueHandler) RefreshIssues(w http.ResponseWriter, r *http.Request) {
	repo, ok := params.LoadRepository(w, r, h.repoService, h.log)
	if !ok {
		return
	}
	if err := h.issueService.RefreshIssues(r.Context(), repo, h.account); err != nil {
		_ = utils.WriteServiceError(w, err)
		return
	}
	issues, err := h.issueService.GetIssues(r.Context(), repo)
	if err != nil {
		_ = utils.WriteServiceError(w, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, IssuesResponse{Repository: repo.FullName(), Issues: dto.ToIssueDTOs(issues)})
}

func (h *IssueHandler) ListIssues(w http.ResponseWriter, r *http.Request) {
	repo, ok := params.LoadRepository(w, r, h.repoService, h.log)
	if !ok {
		return
	}
	issues, err := h.issueService.FindMatchingIssues(r.Context(), repo, params.Query(r))
	if err != nil {
		_ = utils.WriteServiceError(w, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, IssuesResponse{Repository: repo.FullName(), Issues: dto.ToIssueDTOs(issues)})
}
