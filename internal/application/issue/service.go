package issue

import (
	"context"
	"fmt"
	"time"

	"gh-pr-mirror/internal/domain/models"
	"gh-pr-mirror/internal/domain/ports/input"
	ports "gh-pr-mirror/internal/domain/ports/output"
	"gh-pr-mirror/internal/domain/ports/output/events"
	"gh-pr-mirror/internal/domain/ports/output/github"
	uow "gh-pr-mirror/internal/domain/ports/output/uow"
	"gh-pr-mirror/internal/domain/services"
	"gh-pr-mirror/internal/utils"

	"github.com/google/uuid"
)

const MaxMatches = 100

type Service struct {
	uow     uow.UnitOfWork
	clients github.ClientFactory
	pub     events.Publisher
	log     ports.Logger
}

func NewService(uow uow.UnitOfWork, clients github.ClientFactory, pub events.Publisher, log ports.Logger) input.IssueInputPort {
	return &Service{uow: uow, clients: clients, pub: pub, log: log}
}

// RefreshIssues pulls issues changed since the cached watermark, or the open
// ones when nothing is cached yet, then deletes the closed and upserts the
// open in one transaction.
func (s *Service) RefreshIssues(ctx context.Context, repo *models.Repository, account models.Account) error {
	if repo == nil {
		return utils.ErrInvalidArgument
	}
	if repo.GitHubRepository == nil {
		return utils.ErrNotGitHubRepository
	}
	if err := s.refresh(ctx, repo, account); err != nil {
		s.log.Warn("RefreshIssues failed", "err", err, "repository", repo.FullName())
		s.pub.Publish(models.NewErrorEvent(repo, err))
		return err
	}
	s.pub.Publish(models.NewRepositoryEvent(models.EventRepositoryUpdated, repo))
	return nil
}

func (s *Service) refresh(ctx context.Context, repo *models.Repository, account models.Account) error {
	gh := repo.GitHubRepository
	since, err := s.ComputeSinceWatermark(ctx, repo)
	if err != nil {
		return err
	}
	state := models.APIStateOpen
	if since != nil {
		state = models.APIStateAll
	}
	client, err := s.clients.ForAccount(account)
	if err != nil {
		return err
	}
	results, err := client.FetchIssues(ctx, gh.Owner.Login, gh.Name, state, since)
	if err != nil {
		return err
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	issues := tx.IssueRepository()
	var upserted, deleted int
	for _, r := range results {
		// The issues endpoint also lists pull requests.
		if r.PullRequest != nil {
			continue
		}
		if r.State == models.APIStateClosed {
			ok, err := issues.DeleteIssue(ctx, gh.ID, r.Number)
			if err != nil {
				return err
			}
			if ok {
				deleted++
			}
			continue
		}
		if err := issues.UpsertIssue(ctx, gh.ID, &models.Issue{Number: r.Number, Title: r.Title, UpdatedAt: r.UpdatedAt}); err != nil {
			return err
		}
		upserted++
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrWriteFailed, err)
	}
	commit = true
	s.log.Info("issues refreshed", "repository", repo.FullName(), "state", state, "upserted", upserted, "deleted", deleted)
	return nil
}

func (s *Service) GetIssues(ctx context.Context, repo *models.Repository) ([]*models.Issue, error) {
	id, err := persistedID(repo)
	if err != nil {
		return nil, err
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	return tx.IssueRepository().ListIssuesByRepository(ctx, id)
}

// ComputeSinceWatermark returns the latest UpdatedAt among cached issues, or
// nil when none are cached.
func (s *Service) ComputeSinceWatermark(ctx context.Context, repo *models.Repository) (*time.Time, error) {
	id, err := persistedID(repo)
	if err != nil {
		return nil, err
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	return tx.IssueRepository().LatestUpdatedAt(ctx, id)
}

func (s *Service) FindMatchingIssues(ctx context.Context, repo *models.Repository, text string) ([]*models.Issue, error) {
	issues, err := s.GetIssues(ctx, repo)
	if err != nil {
		return nil, err
	}
	matches := services.FindMatching(issues, text)
	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}
	return matches, nil
}

func persistedID(repo *models.Repository) (uuid.UUID, error) {
	if repo == nil {
		return uuid.Nil, utils.ErrInvalidArgument
	}
	if repo.GitHubRepository == nil || repo.GitHubRepository.ID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: %s", utils.ErrRepositoryNotPersisted, repo.Path)
	}
	return repo.GitHubRepository.ID, nil
}
