package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gh-pr-mirror/internal/domain/models"
	"gh-pr-mirror/internal/domain/ports/input"
	ports "gh-pr-mirror/internal/domain/ports/output"
	"gh-pr-mirror/internal/domain/ports/output/events"
	ghrepository "gh-pr-mirror/internal/domain/ports/output/ghrepository"
	"gh-pr-mirror/internal/domain/ports/output/github"
	uow "gh-pr-mirror/internal/domain/ports/output/uow"
	"gh-pr-mirror/internal/utils"

	"github.com/google/uuid"
)

type Service struct {
	uow     uow.UnitOfWork
	clients github.ClientFactory
	pub     events.Publisher
	log     ports.Logger
}

func NewService(uow uow.UnitOfWork, clients github.ClientFactory, pub events.Publisher, log ports.Logger) input.RepositoryInputPort {
	return &Service{uow: uow, clients: clients, pub: pub, log: log}
}

func (s *Service) AddRepository(ctx context.Context, path string) (*models.Repository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, utils.ErrInvalidArgument
	}
	path = filepath.Clean(path)
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("AddRepository begin tx failed", "err", err, "path", path)
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	repos := tx.RepositoryRepository()
	existing, err := repos.GetRepositoryByPath(ctx, path)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, utils.ErrRepositoryNotFound) {
		return nil, err
	}
	repo := &models.Repository{Name: filepath.Base(path), Path: path}
	if err := repos.CreateRepository(ctx, repo); err != nil {
		s.log.Error("AddRepository insert failed", "err", err, "path", path)
		if errors.Is(err, utils.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: insert repository %s: %v", utils.ErrWriteFailed, path, err)
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("AddRepository commit failed", "err", err, "path", path)
		return nil, fmt.Errorf("%w: %v", utils.ErrWriteFailed, err)
	}
	commit = true
	s.log.Info("repository added", "name", repo.Name, "path", repo.Path)
	s.pub.Publish(models.NewRepositoryEvent(models.EventRepositoriesUpdated, repo))
	return repo, nil
}

func (s *Service) GetAll(ctx context.Context) ([]*models.Repository, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	return tx.RepositoryRepository().ListRepositories(ctx)
}

func (s *Service) GetRepository(ctx context.Context, id uuid.UUID) (*models.Repository, error) {
	if id == uuid.Nil {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	return tx.RepositoryRepository().GetRepositoryByID(ctx, id)
}

func (s *Service) UpdateRepositoryMissing(ctx context.Context, repo *models.Repository, missing bool) (*models.Repository, error) {
	if repo == nil {
		return nil, utils.ErrInvalidArgument
	}
	err := s.write(ctx, "UpdateRepositoryMissing", func(tx uow.Transaction) error {
		return tx.RepositoryRepository().UpdateMissing(ctx, repo.Name, repo.Path, missing)
	})
	if err != nil {
		return nil, err
	}
	updated := *repo
	updated.IsMissing = missing
	s.pub.Publish(models.NewRepositoryEvent(models.EventRepositoriesUpdated, &updated))
	return &updated, nil
}

func (s *Service) UpdateRepositoryPath(ctx context.Context, repo *models.Repository, path string) (*models.Repository, error) {
	if repo == nil || strings.TrimSpace(path) == "" {
		return nil, utils.ErrInvalidArgument
	}
	path = filepath.Clean(path)
	err := s.write(ctx, "UpdateRepositoryPath", func(tx uow.Transaction) error {
		return tx.RepositoryRepository().UpdatePath(ctx, repo.Name, repo.Path, path)
	})
	if err != nil {
		return nil, err
	}
	updated := *repo
	updated.Path = path
	updated.IsMissing = false
	s.pub.Publish(models.NewRepositoryEvent(models.EventRepositoriesUpdated, &updated))
	return &updated, nil
}

// UpsertGitHubRepository returns the linked record when there is one,
// otherwise stores apiResult and links it.
func (s *Service) UpsertGitHubRepository(ctx context.Context, repo *models.Repository, endpoint string, apiResult *models.APIRepository) (*models.GitHubRepository, error) {
	if repo == nil || apiResult == nil {
		return nil, utils.ErrInvalidArgument
	}
	if repo.GitHubRepository != nil {
		return repo.GitHubRepository, nil
	}
	updated, err := s.link(ctx, repo, endpoint, apiResult)
	if err != nil {
		return nil, err
	}
	repo.GitHubRepository = updated.GitHubRepository
	return updated.GitHubRepository, nil
}

func (s *Service) UpdateGitHubRepository(ctx context.Context, repo *models.Repository, endpoint string, apiResult *models.APIRepository) (*models.Repository, error) {
	if repo == nil || apiResult == nil {
		return nil, utils.ErrInvalidArgument
	}
	return s.link(ctx, repo, endpoint, apiResult)
}

// AddParentGitHubRepository relinks repo to head, recording base as the
// repository head was forked from.
func (s *Service) AddParentGitHubRepository(ctx context.Context, repo *models.Repository, endpoint string, head *models.APIRepository, base *models.APIRepository) (*models.Repository, error) {
	if repo == nil || head == nil || base == nil {
		return nil, utils.ErrInvalidArgument
	}
	if repo.GitHubRepository == nil {
		return nil, utils.ErrNotGitHubRepository
	}
	fork := *head
	fork.Parent = base
	return s.link(ctx, repo, endpoint, &fork)
}

func (s *Service) RefreshGitHubRepository(ctx context.Context, repo *models.Repository, account models.Account) (*models.Repository, error) {
	if repo == nil {
		return nil, utils.ErrInvalidArgument
	}
	gh := repo.GitHubRepository
	if gh == nil {
		return nil, utils.ErrNotGitHubRepository
	}
	endpoint := account.Endpoint
	if endpoint == "" {
		endpoint = gh.Endpoint()
	}
	client, err := s.clients.ForAccount(account)
	if err != nil {
		s.pub.Publish(models.NewErrorEvent(repo, err))
		return nil, err
	}
	apiResult, err := client.FetchRepository(ctx, gh.Owner.Login, gh.Name)
	if err != nil {
		s.log.Warn("RefreshGitHubRepository fetch failed", "err", err, "repository", repo.FullName())
		s.pub.Publish(models.NewErrorEvent(repo, err))
		return nil, err
	}
	return s.link(ctx, repo, endpoint, apiResult)
}

func (s *Service) LinkGitHubRepository(ctx context.Context, repo *models.Repository, account models.Account, owner string, name string) (*models.Repository, error) {
	if repo == nil || owner == "" || name == "" {
		return nil, utils.ErrInvalidArgument
	}
	client, err := s.clients.ForAccount(account)
	if err != nil {
		return nil, err
	}
	apiResult, err := client.FetchRepository(ctx, owner, name)
	if err != nil {
		s.log.Warn("LinkGitHubRepository fetch failed", "err", err, "owner", owner, "name", name)
		s.pub.Publish(models.NewErrorEvent(repo, err))
		return nil, err
	}
	return s.link(ctx, repo, account.Endpoint, apiResult)
}

func (s *Service) FindGitHubRepositoryByID(ctx context.Context, id uuid.UUID) (*models.GitHubRepository, error) {
	if id == uuid.Nil {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	return tx.GitHubRepositoryRepository().GetGitHubRepositoryByID(ctx, id)
}

func (s *Service) link(ctx context.Context, repo *models.Repository, endpoint string, apiResult *models.APIRepository) (*models.Repository, error) {
	var gh *models.GitHubRepository
	err := s.write(ctx, "LinkGitHubRepository", func(tx uow.Transaction) error {
		var err error
		gh, err = SaveGitHubRepository(ctx, tx.GitHubRepositoryRepository(), endpoint, apiResult)
		if err != nil {
			return err
		}
		return tx.RepositoryRepository().LinkGitHubRepository(ctx, repo.Name, repo.Path, gh.ID)
	})
	if err != nil {
		return nil, err
	}
	updated := *repo
	updated.GitHubRepository = gh
	s.log.Info("github repository linked", "repository", updated.FullName(), "path", updated.Path, "fork", gh.IsFork())
	s.pub.Publish(models.NewRepositoryEvent(models.EventRepositoriesUpdated, &updated))
	return &updated, nil
}

func (s *Service) write(ctx context.Context, op string, fn func(tx uow.Transaction) error) error {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error(op+" begin tx failed", "err", err)
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	if err := fn(tx); err != nil {
		s.log.Error(op+" failed", "err", err)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error(op+" commit failed", "err", err)
		return err
	}
	commit = true
	return nil
}

// SaveGitHubRepository stores apiResult and its fork ancestors, parents first,
// and returns the stored child with Parent resolved. Ancestors get the
// child's endpoint.
func SaveGitHubRepository(ctx context.Context, store ghrepository.GitHubRepositoryRepository, endpoint string, apiResult *models.APIRepository) (*models.GitHubRepository, error) {
	var parent *models.GitHubRepository
	if apiResult.Parent != nil {
		p, err := SaveGitHubRepository(ctx, store, endpoint, apiResult.Parent)
		if err != nil {
			return nil, err
		}
		parent = p
	}
	gh := apiResult.ToGitHubRepository(endpoint)
	if parent != nil {
		gh.ParentID = &parent.ID
		gh.Parent = parent
	}
	if err := store.UpsertGitHubRepository(ctx, gh); err != nil {
		return nil, err
	}
	return gh, nil
}
