package git

import (
	"context"
	"gh-pr-mirror/internal/domain/models"
)

//go:generate mockery --name RemoteManager --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename RemoteManager.go

type RemoteManager interface {
	ListRemotes(ctx context.Context, repoPath string) ([]models.Remote, error)
	AddRemote(ctx context.Context, repoPath string, name string, url string) (*models.Remote, error)
	// RemoveRemote succeeds when the remote is already absent.
	RemoveRemote(ctx context.Context, repoPath string, name string) error
	SetRemoteURL(ctx context.Context, repoPath string, name string, url string) error
}
