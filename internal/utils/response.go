package utils

import (
	"encoding/json"
	"errors"
	"net/http"
)

type ErrorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// HTTPStatusFromError maps service errors onto HTTP status codes.
func HTTPStatusFromError(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrRepositoryNotFound), errors.Is(err, ErrGitHubRepositoryNotFound), errors.Is(err, ErrPullRequestNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrNotGitHubRepository), errors.Is(err, ErrRepositoryNotPersisted):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrRemoteAPI):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func HTTPCodeConverter(status int, errs ...error) string {
	if len(errs) > 0 && errs[0] != nil {
		err := errs[0]
		switch {
		case errors.Is(err, ErrNotGitHubRepository):
			return "NOT_GITHUB_REPOSITORY"
		case errors.Is(err, ErrRepositoryNotPersisted):
			return "NOT_PERSISTED"
		case errors.Is(err, ErrRemoteAPI):
			return "REMOTE_API"
		case errors.Is(err, ErrAlreadyExists):
			return "ALREADY_EXISTS"
		}
	}
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusUnprocessableEntity:
		return "UNPROCESSABLE"
	case http.StatusBadGateway:
		return "BAD_GATEWAY"
	default:
		return "INTERNAL"
	}
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := ErrorResponse{Error: ErrorDetails{Code: code, Message: message}}
	return json.NewEncoder(w).Encode(resp)
}

// WriteServiceError writes err with the status and code derived from it.
func WriteServiceError(w http.ResponseWriter, err error) error {
	status := HTTPStatusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = ErrInternal.Error()
	}
	return WriteError(w, status, HTTPCodeConverter(status, err), msg)
}
