package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gh-pr-mirror/internal/infrastructure/config"
	"gh-pr-mirror/internal/infrastructure/logger"
)

type Server struct {
	address string
	log     *logger.Logger
	router  *Router
	server  *http.Server
	svc     Services
}

func NewServer(cfg config.HTTPServer, log *logger.Logger, svc Services) *Server {
	return &Server{
		address: fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		log:     log,
		svc:     svc,
	}
}

func (s *Server) Run(cfg *config.Config) error {
	s.router = NewRouter(s.log, s.svc)
	s.router.Setup(cfg)

	// No WriteTimeout: /events streams until the client leaves.
	s.server = &http.Server{
		Addr:              s.address,
		Handler:           s.router.GetRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.log.Info("Starting server", slog.String("address", s.address))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	err := s.server.Shutdown(ctx)
	if waitErr := s.router.WaitBackground(ctx); waitErr != nil {
		s.log.Warn("background refreshes still running at shutdown", "err", waitErr)
		err = errors.Join(err, waitErr)
	}
	return err
}
