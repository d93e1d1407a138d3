package dto

import (
	"time"

	"gh-pr-mirror/internal/domain/models"
)

type IssueDTO struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToIssueDTOs(issues []*models.Issue) []IssueDTO {
	out := make([]IssueDTO, 0, len(issues))
	for _, is := range issues {
		out = append(out, IssueDTO{Number: is.Number, Title: is.Title, UpdatedAt: is.UpdatedAt})
	}
	return out
}

type RemoteDTO struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func ToRemoteDTOs(remotes []models.Remote) []RemoteDTO {
	out := make([]RemoteDTO, 0, len(remotes))
	for _, r := range remotes {
		out = append(out, RemoteDTO{Name: r.Name, URL: r.URL})
	}
	return out
}

type EventDTO struct {
	Kind          string         `json:"kind"`
	RepositoryKey string         `json:"repository_key,omitempty"`
	Repository    *RepositoryDTO `json:"repository,omitempty"`
	Fetching      bool           `json:"fetching"`
	Error         string         `json:"error,omitempty"`
	At            time.Time      `json:"at"`
}

func ToEventDTO(evt models.Event) EventDTO {
	out := EventDTO{Kind: string(evt.Kind), RepositoryKey: evt.RepositoryKey, Fetching: evt.Fetching, At: evt.At}
	if evt.Repository != nil {
		r := ToRepositoryDTO(evt.Repository)
		out.Repository = &r
	}
	if evt.Err != nil {
		out.Error = evt.Err.Error()
	}
	return out
}
