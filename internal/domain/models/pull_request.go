package models

import (
	"time"

	"github.com/google/uuid"
)

type PullRequestRef struct {
	Ref          string
	SHA          string
	RepositoryID *uuid.UUID
	Repository   *GitHubRepository
}

type PullRequest struct {
	ID        uuid.UUID
	Number    int
	Title     string
	CreatedAt time.Time
	Author    string
	Head      PullRequestRef
	Base      PullRequestRef
	Status    *PullRequestStatus
}

func (p *PullRequest) MatchNumber() int   { return p.Number }
func (p *PullRequest) MatchTitle() string { return p.Title }
