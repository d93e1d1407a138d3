package dto

import (
	"time"

	"gh-pr-mirror/internal/domain/models"
)

type OwnerDTO struct {
	Login     string `json:"login"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Endpoint  string `json:"endpoint"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type GitHubRepositoryDTO struct {
	ID            string               `json:"id"`
	FullName      string               `json:"full_name"`
	Owner         OwnerDTO             `json:"owner"`
	DefaultBranch string               `json:"default_branch"`
	Private       bool                 `json:"private"`
	CloneURL      string               `json:"clone_url"`
	HTMLURL       string               `json:"html_url"`
	Parent        *GitHubRepositoryDTO `json:"parent,omitempty"`
}

type RepositoryDTO struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Path      string               `json:"path"`
	IsMissing bool                 `json:"is_missing"`
	FullName  string               `json:"full_name"`
	GitHub    *GitHubRepositoryDTO `json:"github,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func ToRepositoryDTO(r *models.Repository) RepositoryDTO {
	return RepositoryDTO{
		ID:        r.ID.String(),
		Name:      r.Name,
		Path:      r.Path,
		IsMissing: r.IsMissing,
		FullName:  r.FullName(),
		GitHub:    ToGitHubRepositoryDTO(r.GitHubRepository),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ToGitHubRepositoryDTO converts g and its parents; a repeated parent ends
// the chain.
func ToGitHubRepositoryDTO(g *models.GitHubRepository) *GitHubRepositoryDTO {
	return toGitHubRepositoryDTO(g, map[*models.GitHubRepository]bool{})
}

func toGitHubRepositoryDTO(g *models.GitHubRepository, seen map[*models.GitHubRepository]bool) *GitHubRepositoryDTO {
	if g == nil || seen[g] {
		return nil
	}
	seen[g] = true
	return &GitHubRepositoryDTO{
		ID:       g.ID.String(),
		FullName: g.FullName(),
		Owner: OwnerDTO{
			Login:     g.Owner.Login,
			Name:      g.Owner.Name,
			Email:     g.Owner.Email,
			Endpoint:  g.Owner.Endpoint,
			AvatarURL: g.Owner.AvatarURL,
		},
		DefaultBranch: g.DefaultBranch,
		Private:       g.IsPrivate,
		CloneURL:      g.CloneURL,
		HTMLURL:       g.HTMLURL,
		Parent:        toGitHubRepositoryDTO(g.Parent, seen),
	}
}
