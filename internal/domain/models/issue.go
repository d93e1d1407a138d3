package models

import (
	"time"

	"github.com/google/uuid"
)

type Issue struct {
	ID        uuid.UUID
	Number    int
	Title     string
	UpdatedAt time.Time
}

func (i *Issue) MatchNumber() int   { return i.Number }
func (i *Issue) MatchTitle() string { return i.Title }
