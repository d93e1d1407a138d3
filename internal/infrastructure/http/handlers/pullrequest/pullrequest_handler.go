package pullrequest

import (
	"gh-pr-mirror/internal/domain/models"
	input "gh-pr-mirror/internal/domain/ports/input"
	"gh-pr-mirror/internal/infrastructure/logger"

	"github.com/sourcegraph/conc"
)

type PullRequestHandler struct {
	repoService input.RepositoryInputPort
	prService   input.PullRequestInputPort
	account     models.Account
	log         *logger.Logger
	background  *conc.WaitGroup
}

// NewPullRequestHandler builds the handler; async refreshes run on background.
func NewPullRequestHandler(repoSvc input.RepositoryInputPort, prSvc input.PullRequestInputPort, account models.Account, background *conc.WaitGroup, log *logger.Logger) *PullRequestHandler {
	return &PullRequestHandler{repoService: repoSvc, prService: prSvc, account: account, background: background, log: log}
}
