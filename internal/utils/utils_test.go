package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUniqueInts(t *testing.T) {
	require.Equal(t, []int{1, 5, 7}, UniqueInts([]int{7, 1, 5, 7, 1}))
	require.NotNil(t, UniqueInts(nil))
	require.Empty(t, UniqueInts(nil))
}

func TestParseUUID(t *testing.T) {
	id := uuid.New()
	got, err := ParseUUID(id.String())
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = ParseUUID("")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ParseUUID("nope")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUUIDPtr(t *testing.T) {
	require.Nil(t, UUIDPtr(uuid.Nil))
	id := uuid.New()
	require.Equal(t, id, *UUIDPtr(id))
}

func TestHTTPStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrInvalidArgument, http.StatusBadRequest},
		{ErrRepositoryNotFound, http.StatusNotFound},
		{ErrAlreadyExists, http.StatusConflict},
		{ErrNotGitHubRepository, http.StatusUnprocessableEntity},
		{ErrRemoteAPI, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, HTTPStatusFromError(tt.err), tt.err.Error())
	}
}

func TestWriteServiceError_HidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteServiceError(rec, errors.New("password=hunter2")))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "hunter2")
	require.Contains(t, rec.Body.String(), "INTERNAL")
}
