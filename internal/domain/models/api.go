package models

import "time"

// API results as returned by the GitHub REST API.

type APIOwner struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type APIRepository struct {
	Name          string         `json:"name"`
	Owner         APIOwner       `json:"owner"`
	DefaultBranch string         `json:"default_branch"`
	Private       bool           `json:"private"`
	CloneURL      string         `json:"clone_url"`
	HTMLURL       string         `json:"html_url"`
	Parent        *APIRepository `json:"parent,omitempty"`
}

type APIRef struct {
	Ref  string         `json:"ref"`
	SHA  string         `json:"sha"`
	Repo *APIRepository `json:"repo"`
}

type APIUser struct {
	Login string `json:"login"`
}

type APIPullRequest struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	User      APIUser   `json:"user"`
	Head      APIRef    `json:"head"`
	Base      APIRef    `json:"base"`
}

type APIStatus struct {
	ID          int64  `json:"id"`
	State       string `json:"state"`
	TargetURL   string `json:"target_url"`
	Description string `json:"description"`
	Context     string `json:"context"`
}

type APICombinedStatus struct {
	State      string      `json:"state"`
	TotalCount int         `json:"total_count"`
	Statuses   []APIStatus `json:"statuses"`
}

type APIIssue struct {
	Number      int       `json:"number"`
	Title       string    `json:"title"`
	State       string    `json:"state"`
	UpdatedAt   time.Time `json:"updated_at"`
	PullRequest *struct {
		URL string `json:"url"`
	} `json:"pull_request,omitempty"`
}

const (
	APIStateOpen   = "open"
	APIStateClosed = "closed"
	APIStateAll    = "all"
)

// ToGitHubRepository maps the API result onto a record owned by endpoint.
// The parent link is left to the caller.
func (a *APIRepository) ToGitHubRepository(endpoint string) *GitHubRepository {
	return &GitHubRepository{
		Name: a.Name,
		Owner: Owner{
			Login:     a.Owner.Login,
			Name:      a.Owner.Name,
			Email:     a.Owner.Email,
			Endpoint:  endpoint,
			AvatarURL: a.Owner.AvatarURL,
		},
		DefaultBranch: a.DefaultBranch,
		IsPrivate:     a.Private,
		CloneURL:      a.CloneURL,
		HTMLURL:       a.HTMLURL,
	}
}
