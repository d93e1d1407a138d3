package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	issueapp "gh-pr-mirror/internal/application/issue"
	prapp "gh-pr-mirror/internal/application/pullrequest"
	remoteapp "gh-pr-mirror/internal/application/remote"
	repoapp "gh-pr-mirror/internal/application/repository"
	"gh-pr-mirror/internal/domain/models"
	"gh-pr-mirror/internal/infrastructure/config"
	"gh-pr-mirror/internal/infrastructure/events"
	"gh-pr-mirror/internal/infrastructure/fetchtracker"
	"gh-pr-mirror/internal/infrastructure/git"
	"gh-pr-mirror/internal/infrastructure/github"
	httpserver "gh-pr-mirror/internal/infrastructure/http"
	"gh-pr-mirror/internal/infrastructure/logger"
	"gh-pr-mirror/internal/infrastructure/migrator"
	pg_uow "gh-pr-mirror/internal/infrastructure/persistence/postgres/uow"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := cfg.Database.DSN()

	mg, err := migrator.NewMigrator(cfg.Database.MigrationsPath, dsn, log)
	if err != nil {
		log.Error("Failed to create migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := mg.Up(); err != nil {
		log.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	_ = mg.Close()

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres pool config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	uow := pg_uow.NewPostgresUOW(pool, log)
	bus := events.NewBus(cfg.Events.BufferSize, log)
	tracker := fetchtracker.NewTracker(bus)
	clients := github.NewClientFactory(cfg.GitHub, log)
	remotes := remoteapp.NewService(git.NewCLIRemoteManager(cfg.Git.Binary, log), cfg.Git.ForkRemotePrefix, log)

	account := models.Account{
		Login:    cfg.GitHub.Login,
		Endpoint: github.EndpointForHost(cfg.GitHub.Host),
		Token:    cfg.GitHub.Token,
	}

	server := httpserver.NewServer(cfg.HTTPServer, log, httpserver.Services{
		Repositories: repoapp.NewService(uow, clients, bus, log),
		PullRequests: prapp.NewService(uow, clients, tracker, remotes, bus, log),
		Issues:       issueapp.NewService(uow, clients, bus, log),
		Remotes:      remotes,
		Events:       bus,
		Account:      account,
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := server.Run(cfg); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
	}()

	select {
	case <-ctx.Done():
	case <-done:
	}
	log.Info("Shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	log.Info("Server exited")
}
