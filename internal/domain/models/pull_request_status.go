package models

import (
	"time"

	"github.com/google/uuid"
)

type StatusState string

const (
	StatusSuccess StatusState = "success"
	StatusPending StatusState = "pending"
	StatusFailure StatusState = "failure"
	StatusError   StatusState = "error"
)

type StatusCheck struct {
	ID          int64       `json:"id"`
	State       StatusState `json:"state"`
	Description string      `json:"description"`
	TargetURL   string      `json:"target_url"`
	Context     string      `json:"context"`
}

// PullRequestStatus is the combined status of a pull request head commit.
type PullRequestStatus struct {
	ID            uuid.UUID
	PullRequestID uuid.UUID
	SHA           string
	State         StatusState
	TotalCount    int
	Statuses      []StatusCheck
	UpdatedAt     time.Time
}
