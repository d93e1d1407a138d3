package pullrequest

import (
	"context"
	"errors"
	"fmt"

	repoapp "gh-pr-mirror/internal/application/repository"
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

type Service struct {
	uow     uow.UnitOfWork
	clients github.ClientFactory
	tracker services.FetchTracker
	remotes input.RemoteInputPort
	pub     events.Publisher
	log     ports.Logger
}

func NewService(uow uow.UnitOfWork, clients github.ClientFactory, tracker services.FetchTracker, remotes input.RemoteInputPort, pub events.Publisher, log ports.Logger) input.PullRequestInputPort {
	return &Service{uow: uow, clients: clients, tracker: tracker, remotes: remotes, pub: pub, log: log}
}

// RefreshPullRequests syncs the open pull requests of repo with the API,
// fetches the combined status of every head commit and prunes fork remotes
// no longer backing an open pull request. Steps run in order and stop at the
// first failure; writes of finished steps stay committed.
func (s *Service) RefreshPullRequests(ctx context.Context, repo *models.Repository, account models.Account) error {
	if repo == nil {
		return utils.ErrInvalidArgument
	}
	if repo.GitHubRepository == nil {
		return fmt.Errorf("%w: %s", utils.ErrNotGitHubRepository, repo.Path)
	}

	key := repo.FetchKey()
	s.tracker.Begin(key)
	defer s.tracker.End(key)

	if err := s.refresh(ctx, repo, account); err != nil {
		s.log.Warn("RefreshPullRequests failed", "err", err, "repository", repo.FullName(), "path", repo.Path)
		s.pub.Publish(models.NewErrorEvent(repo, err))
		return err
	}
	return nil
}

func (s *Service) refresh(ctx context.Context, repo *models.Repository, account models.Account) error {
	gh := repo.GitHubRepository
	client, err := s.clients.ForAccount(account)
	if err != nil {
		return err
	}
	results, err := client.FetchPullRequests(ctx, gh.Owner.Login, gh.Name, models.APIStateOpen)
	if err != nil {
		return err
	}
	if err := s.apply(ctx, repo, endpointFor(repo, account), results, true); err != nil {
		return err
	}
	open, err := s.GetPullRequests(ctx, repo)
	if err != nil {
		return err
	}
	for _, pr := range open {
		if err := s.fetchStatus(ctx, client, gh, pr); err != nil {
			return err
		}
	}
	s.log.Info("pull requests refreshed", "repository", repo.FullName(), "path", repo.Path, "open", len(open))
	s.pub.Publish(models.NewRepositoryEvent(models.EventRepositoryUpdated, repo))

	if _, err := s.remotes.PruneStaleForkRemotes(ctx, repo, open); err != nil {
		return err
	}
	return nil
}

func (s *Service) UpsertOpenAndPruneClosed(ctx context.Context, repo *models.Repository, account models.Account, results []models.APIPullRequest) error {
	if repo == nil {
		return utils.ErrInvalidArgument
	}
	if repo.GitHubRepository == nil {
		return utils.ErrNotGitHubRepository
	}
	return s.apply(ctx, repo, endpointFor(repo, account), results, false)
}

// apply writes one batch of results in a single transaction. With
// completeListing the results are the whole open set and cached pull
// requests missing from it are dropped too.
func (s *Service) apply(ctx context.Context, repo *models.Repository, endpoint string, results []models.APIPullRequest, completeListing bool) error {
	gh := repo.GitHubRepository
	if gh.ID == uuid.Nil {
		return utils.ErrRepositoryNotPersisted
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("UpsertOpenAndPruneClosed begin tx failed", "err", err)
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	prs := tx.PullRequestRepository()
	ghs := tx.GitHubRepositoryRepository()

	openNumbers := make([]int, 0, len(results))
	var upserted, deleted int
	for i := range results {
		r := &results[i]
		if r.State == models.APIStateClosed {
			ok, err := prs.DeletePullRequest(ctx, gh.ID, r.Number)
			if err != nil {
				return err
			}
			if ok {
				deleted++
			}
			continue
		}
		pr := &models.PullRequest{
			Number:    r.Number,
			Title:     r.Title,
			CreatedAt: r.CreatedAt,
			Author:    r.User.Login,
			Head:      models.PullRequestRef{Ref: r.Head.Ref, SHA: r.Head.SHA},
			Base:      models.PullRequestRef{Ref: r.Base.Ref, SHA: r.Base.SHA, RepositoryID: &gh.ID, Repository: gh},
		}
		if head := r.Head.Repo; head != nil {
			if head.Owner.Login == gh.Owner.Login && head.Name == gh.Name {
				pr.Head.RepositoryID = &gh.ID
				pr.Head.Repository = gh
			} else {
				stored, err := repoapp.SaveGitHubRepository(ctx, ghs, endpoint, head)
				if err != nil {
					return err
				}
				pr.Head.RepositoryID = &stored.ID
				pr.Head.Repository = stored
			}
		}
		if err := prs.UpsertPullRequest(ctx, pr); err != nil {
			return err
		}
		upserted++
		openNumbers = append(openNumbers, r.Number)
	}
	if completeListing {
		n, err := prs.DeletePullRequestsExcept(ctx, gh.ID, openNumbers)
		if err != nil {
			return err
		}
		deleted += int(n)
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("UpsertOpenAndPruneClosed commit failed", "err", err, "repository", repo.FullName())
		return fmt.Errorf("%w: %v", utils.ErrWriteFailed, err)
	}
	commit = true
	s.log.Debug("pull request cache updated", "repository", repo.FullName(), "upserted", upserted, "deleted", deleted)
	return nil
}

func (s *Service) FetchPullRequestStatus(ctx context.Context, repo *models.Repository, account models.Account, pr *models.PullRequest) error {
	if repo == nil || pr == nil {
		return utils.ErrInvalidArgument
	}
	if repo.GitHubRepository == nil {
		return utils.ErrNotGitHubRepository
	}
	client, err := s.clients.ForAccount(account)
	if err != nil {
		return err
	}
	if err := s.fetchStatus(ctx, client, repo.GitHubRepository, pr); err != nil {
		s.pub.Publish(models.NewErrorEvent(repo, err))
		return err
	}
	s.pub.Publish(models.NewRepositoryEvent(models.EventRepositoryUpdated, repo))
	return nil
}

func (s *Service) FetchPullRequestStatuses(ctx context.Context, repo *models.Repository, account models.Account) error {
	if repo == nil {
		return utils.ErrInvalidArgument
	}
	if repo.GitHubRepository == nil {
		return utils.ErrNotGitHubRepository
	}
	open, err := s.GetPullRequests(ctx, repo)
	if err != nil {
		return err
	}
	client, err := s.clients.ForAccount(account)
	if err != nil {
		return err
	}
	for _, pr := range open {
		if err := s.fetchStatus(ctx, client, repo.GitHubRepository, pr); err != nil {
			s.pub.Publish(models.NewErrorEvent(repo, err))
			return err
		}
	}
	s.pub.Publish(models.NewRepositoryEvent(models.EventRepositoryUpdated, repo))
	return nil
}

// fetchStatus replaces the status stored for (head sha, pr id) and sets
// pr.Status once the write is committed.
func (s *Service) fetchStatus(ctx context.Context, client github.API, gh *models.GitHubRepository, pr *models.PullRequest) error {
	if pr.ID == uuid.Nil {
		return fmt.Errorf("%w: pull request #%d", utils.ErrRepositoryNotPersisted, pr.Number)
	}
	combined, err := client.FetchCombinedStatus(ctx, gh.Owner.Login, gh.Name, pr.Head.SHA)
	if err != nil {
		return err
	}
	status := toStatus(pr, combined)

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
	if err := tx.PullRequestRepository().UpsertPullRequestStatus(ctx, status); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrWriteFailed, err)
	}
	commit = true
	pr.Status = status
	return nil
}

// GetPullRequests returns the cached open pull requests of repo, highest
// number first, with head and base repositories and statuses resolved.
func (s *Service) GetPullRequests(ctx context.Context, repo *models.Repository) ([]*models.PullRequest, error) {
	if repo == nil {
		return nil, utils.ErrInvalidArgument
	}
	gh := repo.GitHubRepository
	if gh == nil || gh.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: %s", utils.ErrRepositoryNotPersisted, repo.Path)
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	prRepo := tx.PullRequestRepository()
	ghRepo := tx.GitHubRepositoryRepository()

	prs, err := prRepo.ListPullRequestsByRepository(ctx, gh.ID)
	if err != nil {
		return nil, err
	}
	known := map[uuid.UUID]*models.GitHubRepository{gh.ID: gh}
	for _, pr := range prs {
		pr.Base.Repository = gh
		if id := pr.Head.RepositoryID; id != nil {
			head, ok := known[*id]
			if !ok {
				head, err = ghRepo.GetGitHubRepositoryByID(ctx, *id)
				if err != nil && !errors.Is(err, utils.ErrGitHubRepositoryNotFound) {
					return nil, err
				}
				known[*id] = head
			}
			pr.Head.Repository = head
		}
		status, err := prRepo.FindPullRequestStatus(ctx, pr.Head.SHA, pr.ID)
		switch {
		case err == nil:
			pr.Status = status
		case errors.Is(err, utils.ErrStatusNotFound):
		default:
			return nil, err
		}
	}
	return prs, nil
}

func (s *Service) FindMatchingPullRequests(ctx context.Context, repo *models.Repository, text string) ([]*models.PullRequest, error) {
	prs, err := s.GetPullRequests(ctx, repo)
	if err != nil {
		return nil, err
	}
	return services.FindMatching(prs, text), nil
}

func (s *Service) IsFetchingPullRequests(repo *models.Repository) bool {
	if repo == nil {
		return false
	}
	return s.tracker.IsFetching(repo.FetchKey())
}

func endpointFor(repo *models.Repository, account models.Account) string {
	if account.Endpoint != "" {
		return account.Endpoint
	}
	return repo.GitHubRepository.Endpoint()
}

func toStatus(pr *models.PullRequest, combined *models.APICombinedStatus) *models.PullRequestStatus {
	checks := make([]models.StatusCheck, 0, len(combined.Statuses))
	for _, st := range combined.Statuses {
		checks = append(checks, models.StatusCheck{
			ID:          st.ID,
			State:       models.StatusState(st.State),
			Description: st.Description,
			TargetURL:   st.TargetURL,
			Context:     st.Context,
		})
	}
	return &models.PullRequestStatus{
		PullRequestID: pr.ID,
		SHA:           pr.Head.SHA,
		State:         models.StatusState(combined.State),
		TotalCount:    combined.TotalCount,
		Statuses:      checks,
	}
}
