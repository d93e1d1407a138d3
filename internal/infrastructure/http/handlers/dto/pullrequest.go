package dto

import (
	"time"

	"gh-pr-mirror/internal/domain/models"
)

type RefDTO struct {
	Ref        string `json:"ref"`
	SHA        string `json:"sha"`
	Repository string `json:"repository,omitempty"`
	CloneURL   string `json:"clone_url,omitempty"`
}

type StatusCheckDTO struct {
	State       string `json:"state"`
	Description string `json:"description"`
	TargetURL   string `json:"target_url"`
	Context     string `json:"context"`
}

type StatusDTO struct {
	State      string           `json:"state"`
	TotalCount int              `json:"total_count"`
	Statuses   []StatusCheckDTO `json:"statuses"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type PullRequestDTO struct {
	ID        string     `json:"id"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	CreatedAt time.Time  `json:"created_at"`
	Head      RefDTO     `json:"head"`
	Base      RefDTO     `json:"base"`
	Status    *StatusDTO `json:"status,omitempty"`
}

func ToPullRequestDTO(pr *models.PullRequest) PullRequestDTO {
	out := PullRequestDTO{
		ID:        pr.ID.String(),
		Number:    pr.Number,
		Title:     pr.Title,
		Author:    pr.Author,
		CreatedAt: pr.CreatedAt,
		Head:      toRefDTO(pr.Head),
		Base:      toRefDTO(pr.Base),
	}
	if st := pr.Status; st != nil {
		checks := make([]StatusCheckDTO, 0, len(st.Statuses))
		for _, c := range st.Statuses {
			checks = append(checks, StatusCheckDTO{State: string(c.State), Description: c.Description, TargetURL: c.TargetURL, Context: c.Context})
		}
		out.Status = &StatusDTO{State: string(st.State), TotalCount: st.TotalCount, Statuses: checks, UpdatedAt: st.UpdatedAt}
	}
	return out
}

func ToPullRequestDTOs(prs []*models.PullRequest) []PullRequestDTO {
	out := make([]PullRequestDTO, 0, len(prs))
	for _, pr := range prs {
		out = append(out, ToPullRequestDTO(pr))
	}
	return out
}

func toRefDTO(ref models.PullRequestRef) RefDTO {
	out := RefDTO{Ref: ref.Ref, SHA: ref.SHA}
	if ref.Repository != nil {
		out.Repository = ref.Repository.FullName()
		out.CloneURL = ref.Repository.CloneURL
	}
	return out
}
