package main

import (
	"context"
	"fmt"
	"path/filepath"

	issueapp "gh-pr-mirror/internal/application/issue"
	prapp "gh-pr-mirror/internal/application/pullrequest"
	remoteapp "gh-pr-mirror/internal/application/remote"
	repoapp "gh-pr-mirror/internal/application/repository"
	"gh-pr-mirror/internal/domain/models"
	input "gh-pr-mirror/internal/domain/ports/input"
	"gh-pr-mirror/internal/infrastructure/config"
	"gh-pr-mirror/internal/infrastructure/events"
	"gh-pr-mirror/internal/infrastructure/fetchtracker"
	"gh-pr-mirror/internal/infrastructure/git"
	"gh-pr-mirror/internal/infrastructure/github"
	"gh-pr-mirror/internal/infrastructure/logger"
	"gh-pr-mirror/internal/infrastructure/migrator"
	pg_uow "gh-pr-mirror/internal/infrastructure/persistence/postgres/uow"
	"gh-pr-mirror/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

// app holds the services a command runs against.
type app struct {
	repos   input.RepositoryInputPort
	prs     input.PullRequestInputPort
	issues  input.IssueInputPort
	remotes input.RemoteInputPort
	account models.Account
	log     *logger.Logger
	closers []func()
}

// openApp builds the app for a command run; tests replace it.
var openApp = newApp

func newApp(ctx context.Context, configDir string) (*app, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.Env)
	dsn := cfg.Database.DSN()

	mg, err := migrator.NewMigrator(cfg.Database.MigrationsPath, dsn, log)
	if err != nil {
		return nil, err
	}
	defer func() { _ = mg.Close() }()
	if err := mg.Up(); err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	uow := pg_uow.NewPostgresUOW(pool, log)
	bus := events.NewBus(cfg.Events.BufferSize, log)
	clients := github.NewClientFactory(cfg.GitHub, log)
	remotes := remoteapp.NewService(git.NewCLIRemoteManager(cfg.Git.Binary, log), cfg.Git.ForkRemotePrefix, log)

	return &app{
		repos:   repoapp.NewService(uow, clients, bus, log),
		prs:     prapp.NewService(uow, clients, fetchtracker.NewTracker(bus), remotes, bus, log),
		issues:  issueapp.NewService(uow, clients, bus, log),
		remotes: remotes,
		account: models.Account{
			Login:    cfg.GitHub.Login,
			Endpoint: github.EndpointForHost(cfg.GitHub.Host),
			Token:    cfg.GitHub.Token,
		},
		log:     log,
		closers: []func(){pool.Close},
	}, nil
}

func (a *app) Close() {
	for _, c := range a.closers {
		c()
	}
}

// lookup finds the tracked repository at path.
func (a *app) lookup(ctx context.Context, path string) (*models.Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	all, err := a.repos.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range all {
		if filepath.Clean(r.Path) == abs {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %s (run `mirrorctl add` first)", utils.ErrRepositoryNotFound, abs)
}
