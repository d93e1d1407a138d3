package remote

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gh-pr-mirror/internal/domain/models"
	"gh-pr-mirror/internal/domain/ports/input"
	ports "gh-pr-mirror/internal/domain/ports/output"
	"gh-pr-mirror/internal/domain/ports/output/git"
	"gh-pr-mirror/internal/utils"

	"github.com/sourcegraph/conc/pool"
)

const (
	UpstreamRemoteName = "upstream"

	maxConcurrentRemovals = 4
)

// UpstreamAlreadyExistsError is returned when an upstream remote exists but
// points somewhere other than the fork parent.
type UpstreamAlreadyExistsError struct {
	URL string
}

func (e *UpstreamAlreadyExistsError) Error() string {
	return fmt.Sprintf("remote %q already exists with url %s", UpstreamRemoteName, e.URL)
}

type Service struct {
	git    git.RemoteManager
	prefix string
	log    ports.Logger
}

func NewService(git git.RemoteManager, forkPrefix string, log ports.Logger) input.RemoteInputPort {
	return &Service{git: git, prefix: forkPrefix, log: log}
}

// PruneStaleForkRemotes removes fork remotes whose URL is not the head clone
// URL of any open pull request. Every removal is attempted; failures are
// joined into the returned error and the successfully removed remotes are
// still returned.
func (s *Service) PruneStaleForkRemotes(ctx context.Context, repo *models.Repository, openPullRequests []*models.PullRequest) ([]models.Remote, error) {
	if repo == nil || repo.Path == "" {
		return nil, utils.ErrInvalidArgument
	}
	remotes, err := s.git.ListRemotes(ctx, repo.Path)
	if err != nil {
		s.log.Error("PruneStaleForkRemotes list failed", "err", err, "path", repo.Path)
		return nil, err
	}

	inUse := make(map[string]struct{}, len(openPullRequests))
	for _, pr := range openPullRequests {
		if pr == nil || pr.Head.Repository == nil {
			continue
		}
		inUse[pr.Head.Repository.CloneURL] = struct{}{}
	}

	var stale []models.Remote
	for _, r := range remotes {
		if !strings.HasPrefix(r.Name, s.prefix) {
			continue
		}
		if _, ok := inUse[r.URL]; ok {
			continue
		}
		stale = append(stale, r)
	}
	if len(stale) == 0 {
		return []models.Remote{}, nil
	}

	var mu sync.Mutex
	removed := make([]models.Remote, 0, len(stale))
	p := pool.New().WithErrors().WithMaxGoroutines(maxConcurrentRemovals)
	for _, r := range stale {
		p.Go(func() error {
			if err := s.git.RemoveRemote(ctx, repo.Path, r.Name); err != nil {
				s.log.Warn("fork remote removal failed", "remote", r.Name, "path", repo.Path, "err", err)
				if errors.Is(err, utils.ErrRemoteRemoval) {
					return err
				}
				return fmt.Errorf("%w: %s: %w", utils.ErrRemoteRemoval, r.Name, err)
			}
			mu.Lock()
			removed = append(removed, r)
			mu.Unlock()
			return nil
		})
	}
	err = p.Wait()
	sort.Slice(removed, func(i, j int) bool { return removed[i].Name < removed[j].Name })
	s.log.Info("fork remotes pruned", "path", repo.Path, "removed", len(removed), "stale", len(stale))
	return removed, err
}

// EnsureForkRemote makes sure a fork remote points at the head repository of
// pr. It returns nil when the head lives in the tracked repository itself.
func (s *Service) EnsureForkRemote(ctx context.Context, repo *models.Repository, pr *models.PullRequest) (*models.Remote, error) {
	if repo == nil || pr == nil {
		return nil, utils.ErrInvalidArgument
	}
	if repo.GitHubRepository == nil {
		return nil, utils.ErrNotGitHubRepository
	}
	head := pr.Head.Repository
	if head == nil {
		return nil, fmt.Errorf("%w: head repository of #%d was deleted", utils.ErrGitHubRepositoryNotFound, pr.Number)
	}
	if head.CloneURL == repo.GitHubRepository.CloneURL {
		return nil, nil
	}
	return s.ensure(ctx, repo.Path, s.prefix+head.Owner.Login, head.CloneURL, true)
}

// AddUpstreamRemote adds an upstream remote pointing at the fork parent.
func (s *Service) AddUpstreamRemote(ctx context.Context, repo *models.Repository) (*models.Remote, error) {
	if repo == nil {
		return nil, utils.ErrInvalidArgument
	}
	gh := repo.GitHubRepository
	if gh == nil {
		return nil, utils.ErrNotGitHubRepository
	}
	if gh.Parent == nil {
		return nil, fmt.Errorf("%w: %s is not a fork", utils.ErrInvalidArgument, gh.FullName())
	}
	return s.ensure(ctx, repo.Path, UpstreamRemoteName, gh.Parent.CloneURL, false)
}

func (s *Service) ensure(ctx context.Context, path string, name string, url string, replace bool) (*models.Remote, error) {
	remotes, err := s.git.ListRemotes(ctx, path)
	if err != nil {
		return nil, err
	}
	for _, r := range remotes {
		if r.Name != name {
			continue
		}
		if r.URL == url {
			return &r, nil
		}
		if !replace {
			return nil, &UpstreamAlreadyExistsError{URL: r.URL}
		}
		if err := s.git.SetRemoteURL(ctx, path, name, url); err != nil {
			return nil, err
		}
		s.log.Info("remote url updated", "path", path, "remote", name, "url", url)
		return &models.Remote{Name: name, URL: url}, nil
	}
	return s.git.AddRemote(ctx, path, name, url)
}
