package repository_test

import (
	"context"
	"errors"
	"testing"

	app "gh-pr-mirror/internal/application/repository"
	"gh-pr-mirror/internal/domain/models"
	"gh-pr-mirror/internal/infrastructure/logger"
	"gh-pr-mirror/internal/utils"
	"gh-pr-mirror/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deps struct {
	uow     *mocks.UnitOfWork
	tx      *mocks.Transaction
	repos   *mocks.RepositoryRepository
	ghRepos *mocks.GitHubRepositoryRepository
	clients *mocks.ClientFactory
	api     *mocks.API
	pub     *mocks.Publisher
}

func newDeps(t *testing.T) *deps {
	d := &deps{
		uow:     mocks.NewUnitOfWork(t),
		tx:      mocks.NewTransaction(t),
		repos:   mocks.NewRepositoryRepository(t),
		ghRepos: mocks.NewGitHubRepositoryRepository(t),
		clients: mocks.NewClientFactory(t),
		api:     mocks.NewAPI(t),
		pub:     mocks.NewPublisher(t),
	}
	d.tx.EXPECT().RepositoryRepository().Maybe().Return(d.repos)
	d.tx.EXPECT().GitHubRepositoryRepository().Maybe().Return(d.ghRepos)
	return d
}

func (d *deps) service() *app.Service {
	return app.NewService(d.uow, d.clients, d.pub, logger.New("test")).(*app.Service)
}

func publishes(kind models.EventKind) interface{} {
	return mock.MatchedBy(func(evt models.Event) bool { return evt.Kind == kind })
}

func TestRepositoryService_AddRepository(t *testing.T) {
	ctx := context.Background()
	existing := &models.Repository{ID: uuid.New(), Name: "R", Path: "/src/R"}

	tests := []struct {
		name    string
		path    string
		setup   func(d *deps)
		wantErr error
		check   func(t *testing.T, repo *models.Repository)
	}{
		{
			name: "inserts new path",
			path: "/src/R/",
			setup: func(d *deps) {
				d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
				d.repos.EXPECT().GetRepositoryByPath(ctx, "/src/R").Return(nil, utils.ErrRepositoryNotFound)
				d.repos.EXPECT().CreateRepository(ctx, mock.MatchedBy(func(r *models.Repository) bool {
					return r.Name == "R" && r.Path == "/src/R" && !r.IsMissing
				})).Return(nil)
				d.tx.EXPECT().Commit(ctx).Return(nil)
				d.pub.EXPECT().Publish(publishes(models.EventRepositoriesUpdated)).Return()
			},
			check: func(t *testing.T, repo *models.Repository) {
				require.Equal(t, "R", repo.Name)
			},
		},
		{
			name: "returns existing record",
			path: "/src/R",
			setup: func(d *deps) {
				d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
				d.repos.EXPECT().GetRepositoryByPath(ctx, "/src/R").Return(existing, nil)
				d.tx.EXPECT().Rollback(ctx).Return(nil)
			},
			check: func(t *testing.T, repo *models.Repository) {
				require.Equal(t, existing.ID, repo.ID)
			},
		},
		{
			name: "insert failure is a write failure",
			path: "/src/R",
			setup: func(d *deps) {
				d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
				d.repos.EXPECT().GetRepositoryByPath(ctx, "/src/R").Return(nil, utils.ErrRepositoryNotFound)
				d.repos.EXPECT().CreateRepository(ctx, mock.Anything).Return(errors.New("disk full"))
				d.tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrWriteFailed,
		},
		{
			name:    "empty path",
			path:    "  ",
			wantErr: utils.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}
			repo, err := d.service().AddRepository(ctx, tt.path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, repo)
				return
			}
			require.NoError(t, err)
			tt.check(t, repo)
		})
	}
}

func TestRepositoryService_UpdateRepositoryPath(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	repo := &models.Repository{Name: "R", Path: "/old/R", IsMissing: true}

	d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
	d.repos.EXPECT().UpdatePath(ctx, "R", "/old/R", "/new/R").Return(nil)
	d.tx.EXPECT().Commit(ctx).Return(nil)
	d.pub.EXPECT().Publish(publishes(models.EventRepositoriesUpdated)).Return()

	updated, err := d.service().UpdateRepositoryPath(ctx, repo, "/new/R")
	require.NoError(t, err)
	require.Equal(t, "/new/R", updated.Path)
	require.False(t, updated.IsMissing)
	require.Equal(t, "/old/R", repo.Path)
}

func TestRepositoryService_UpdateRepositoryMissing_NotFound(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	repo := &models.Repository{Name: "R", Path: "/src/R"}

	d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
	d.repos.EXPECT().UpdateMissing(ctx, "R", "/src/R", true).Return(utils.ErrRepositoryNotFound)
	d.tx.EXPECT().Rollback(ctx).Return(nil)

	_, err := d.service().UpdateRepositoryMissing(ctx, repo, true)
	require.ErrorIs(t, err, utils.ErrRepositoryNotFound)
}

func TestRepositoryService_UpsertGitHubRepository_StoresParentsFirst(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	repo := &models.Repository{Name: "R", Path: "/src/R"}
	parentID, childID := uuid.New(), uuid.New()
	apiResult := &models.APIRepository{
		Name:  "R",
		Owner: models.APIOwner{Login: "alice"},
		Parent: &models.APIRepository{
			Name:  "R",
			Owner: models.APIOwner{Login: "octo"},
		},
	}

	var order []string
	d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
	d.ghRepos.EXPECT().UpsertGitHubRepository(ctx, mock.Anything).RunAndReturn(func(_ context.Context, g *models.GitHubRepository) error {
		order = append(order, g.Owner.Login)
		require.Equal(t, "https://api.github.com", g.Owner.Endpoint)
		if g.Owner.Login == "octo" {
			g.ID = parentID
		} else {
			g.ID = childID
		}
		return nil
	}).Times(2)
	d.repos.EXPECT().LinkGitHubRepository(ctx, "R", "/src/R", childID).Return(nil)
	d.tx.EXPECT().Commit(ctx).Return(nil)
	d.pub.EXPECT().Publish(publishes(models.EventRepositoriesUpdated)).Return()

	gh, err := d.service().UpsertGitHubRepository(ctx, repo, "https://api.github.com", apiResult)
	require.NoError(t, err)
	require.Equal(t, []string{"octo", "alice"}, order)
	require.True(t, gh.IsFork())
	require.Equal(t, parentID, *gh.ParentID)
	require.Equal(t, "octo/R", gh.Parent.FullName())
	require.Same(t, gh, repo.GitHubRepository)
}

func TestRepositoryService_UpsertGitHubRepository_AlreadyLinked(t *testing.T) {
	d := newDeps(t)
	linked := &models.GitHubRepository{ID: uuid.New(), Name: "R", Owner: models.Owner{Login: "octo"}}
	repo := &models.Repository{Name: "R", Path: "/src/R", GitHubRepository: linked}

	gh, err := d.service().UpsertGitHubRepository(context.Background(), repo, "", &models.APIRepository{Name: "other"})
	require.NoError(t, err)
	require.Same(t, linked, gh)
}

func TestRepositoryService_AddParentGitHubRepository_RequiresLink(t *testing.T) {
	d := newDeps(t)
	repo := &models.Repository{Name: "R", Path: "/src/R"}
	_, err := d.service().AddParentGitHubRepository(context.Background(), repo, "", &models.APIRepository{}, &models.APIRepository{})
	require.ErrorIs(t, err, utils.ErrNotGitHubRepository)
}

func TestRepositoryService_RefreshGitHubRepository(t *testing.T) {
	ctx := context.Background()
	account := models.Account{Login: "me", Endpoint: "https://api.github.com", Token: "t"}
	linked := &models.GitHubRepository{ID: uuid.New(), Name: "R", Owner: models.Owner{Login: "octo"}}

	t.Run("relinks fetched record", func(t *testing.T) {
		d := newDeps(t)
		repo := &models.Repository{Name: "R", Path: "/src/R", GitHubRepository: linked}
		d.clients.EXPECT().ForAccount(account).Return(d.api, nil)
		d.api.EXPECT().FetchRepository(ctx, "octo", "R").Return(&models.APIRepository{
			Name: "R", Owner: models.APIOwner{Login: "octo"}, DefaultBranch: "main",
		}, nil)
		d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
		d.ghRepos.EXPECT().UpsertGitHubRepository(ctx, mock.Anything).RunAndReturn(func(_ context.Context, g *models.GitHubRepository) error {
			g.ID = linked.ID
			return nil
		})
		d.repos.EXPECT().LinkGitHubRepository(ctx, "R", "/src/R", linked.ID).Return(nil)
		d.tx.EXPECT().Commit(ctx).Return(nil)
		d.pub.EXPECT().Publish(publishes(models.EventRepositoriesUpdated)).Return()

		updated, err := d.service().RefreshGitHubRepository(ctx, repo, account)
		require.NoError(t, err)
		require.Equal(t, "main", updated.GitHubRepository.DefaultBranch)
	})

	t.Run("api failure publishes error", func(t *testing.T) {
		d := newDeps(t)
		repo := &models.Repository{Name: "R", Path: "/src/R", GitHubRepository: linked}
		d.clients.EXPECT().ForAccount(account).Return(d.api, nil)
		d.api.EXPECT().FetchRepository(ctx, "octo", "R").Return(nil, utils.ErrRemoteAPI)
		d.pub.EXPECT().Publish(mock.MatchedBy(func(evt models.Event) bool {
			return evt.Kind == models.EventError && errors.Is(evt.Err, utils.ErrRemoteAPI)
		})).Return()

		_, err := d.service().RefreshGitHubRepository(ctx, repo, account)
		require.ErrorIs(t, err, utils.ErrRemoteAPI)
	})

	t.Run("unlinked repository", func(t *testing.T) {
		d := newDeps(t)
		_, err := d.service().RefreshGitHubRepository(ctx, &models.Repository{Name: "R", Path: "/src/R"}, account)
		require.ErrorIs(t, err, utils.ErrNotGitHubRepository)
	})
}

func TestRepositoryService_LinkGitHubRepository(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	repo := &models.Repository{Name: "R", Path: "/src/R"}
	account := models.Account{Endpoint: "https://ghe.example.com/api/v3"}
	ghID := uuid.New()

	d.clients.EXPECT().ForAccount(account).Return(d.api, nil)
	d.api.EXPECT().FetchRepository(ctx, "octo", "R").Return(&models.APIRepository{Name: "R", Owner: models.APIOwner{Login: "octo"}}, nil)
	d.uow.EXPECT().Begin(ctx).Return(d.tx, nil)
	d.ghRepos.EXPECT().UpsertGitHubRepository(ctx, mock.MatchedBy(func(g *models.GitHubRepository) bool {
		return g.Owner.Endpoint == account.Endpoint && g.ParentID == nil
	})).RunAndReturn(func(_ context.Context, g *models.GitHubRepository) error {
		g.ID = ghID
		return nil
	})
	d.repos.EXPECT().LinkGitHubRepository(ctx, "R", "/src/R", ghID).Return(nil)
	d.tx.EXPECT().Commit(ctx).Return(nil)
	d.pub.EXPECT().Publish(publishes(models.EventRepositoriesUpdated)).Return()

	updated, err := d.service().LinkGitHubRepository(ctx, repo, account, "octo", "R")
	require.NoError(t, err)
	require.Equal(t, "octo/R", updated.FullName())
	require.Nil(t, repo.GitHubRepository)
}
