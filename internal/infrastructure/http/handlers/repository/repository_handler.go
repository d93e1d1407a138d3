package repository

import (
	"gh-pr-mirror/internal/domain/models"
	input "gh-pr-mirror/internal/domain/ports/input"
	"gh-pr-mirror/internal/infrastructure/logger"
)

type RepositoryHandler struct {
	repoService   input.RepositoryInputPort
	prService     input.PullRequestInputPort
	remoteService input.RemoteInputPort
	account       models.Account
	log           *logger.Logger
}

func NewRepositoryHandler(repoSvc input.RepositoryInputPort, prSvc input.PullRequestInputPort, remoteSvc input.RemoteInputPort, account models.Account, log *logger.Logger) *RepositoryHandler {
	return &RepositoryHandler{repoService: repoSvc, prService: prSvc, remoteService: remoteSvc, account: account, log: log}
}
