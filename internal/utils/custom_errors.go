package utils

import "errors"

var (
	ErrNotFound                 = errors.New("not found")
	ErrAlreadyExists            = errors.New("already exists")
	ErrInvalidArgument          = errors.New("invalid argument")
	ErrInternal                 = errors.New("internal error")
	ErrRepositoryNotFound       = errors.New("repository not found")
	ErrGitHubRepositoryNotFound = errors.New("github repository not found")
	ErrPullRequestNotFound      = errors.New("pull request not found")
	ErrStatusNotFound           = errors.New("pull request status not found")
	ErrNotGitHubRepository      = errors.New("repository is not linked to a github repository")
	ErrRepositoryNotPersisted   = errors.New("repository has not been persisted")
	ErrWriteFailed              = errors.New("write failed")
	ErrRemoteAPI                = errors.New("remote api request failed")
	ErrRemoteRemoval            = errors.New("remote removal failed")
)
