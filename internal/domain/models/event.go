package models

import "time"

type EventKind string

const (
	EventRepositoryUpdated   EventKind = "repository.updated"
	EventRepositoriesUpdated EventKind = "repositories.updated"
	EventFetchState          EventKind = "fetch.state"
	EventError               EventKind = "error"
)

type Event struct {
	Kind          EventKind
	RepositoryKey string
	Repository    *Repository
	Fetching      bool
	Err           error
	At            time.Time
}

func NewRepositoryEvent(kind EventKind, repo *Repository) Event {
	evt := Event{Kind: kind, Repository: repo, At: time.Now()}
	if repo != nil {
		evt.RepositoryKey = repo.FetchKey()
	}
	return evt
}

func NewErrorEvent(repo *Repository, err error) Event {
	evt := NewRepositoryEvent(EventError, repo)
	evt.Err = err
	return evt
}
