package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// ParseUUID parses s and maps failures onto ErrInvalidArgument.
func ParseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, ErrInvalidArgument
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}
	return id, nil
}

// UUIDPtr returns a pointer to a copy of id, or nil for uuid.Nil.
func UUIDPtr(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
