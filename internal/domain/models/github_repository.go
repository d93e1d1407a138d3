package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Owner struct {
	Login     string
	Name      string
	Email     string
	Endpoint  string
	AvatarURL string
}

func (o Owner) Hash() string {
	return fmt.Sprintf("%s+%s+%s", o.Login, o.Endpoint, o.AvatarURL)
}

// GitHubRepository is the remote side of a tracked repository. Records are
// addressed by ID; the fork parent is referenced by ParentID and resolved into
// Parent on read. Parent is never mutated through the child.
type GitHubRepository struct {
	ID            uuid.UUID
	Name          string
	Owner         Owner
	DefaultBranch string
	IsPrivate     bool
	CloneURL      string
	HTMLURL       string
	ParentID      *uuid.UUID
	Parent        *GitHubRepository
	PullRequests  []*PullRequest
	Issues        []*Issue
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (g *GitHubRepository) FullName() string {
	return fmt.Sprintf("%s/%s", g.Owner.Login, g.Name)
}

func (g *GitHubRepository) Endpoint() string {
	return g.Owner.Endpoint
}

// IsFork reports whether the repository has a parent.
func (g *GitHubRepository) IsFork() bool {
	return g.ParentID != nil || g.Parent != nil
}

// Hash walks the parent chain and stops at the first repeated record.
func (g *GitHubRepository) Hash() string {
	var b strings.Builder
	seen := make(map[*GitHubRepository]struct{})
	for cur := g; cur != nil; cur = cur.Parent {
		if _, ok := seen[cur]; ok {
			b.WriteString("<cycle>")
			break
		}
		seen[cur] = struct{}{}
		if cur != g {
			b.WriteString("+")
		}
		fmt.Fprintf(&b, "%s+%t+%s+%s+%s+%s", cur.DefaultBranch, cur.IsPrivate, cur.CloneURL, cur.Name, cur.HTMLURL, cur.Owner.Hash())
	}
	return b.String()
}
