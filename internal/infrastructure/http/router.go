package http

import (
	"context"
	"net/http"

	"gh-pr-mirror/internal/domain/models"
	input "gh-pr-mirror/internal/domain/ports/input"
	"gh-pr-mirror/internal/infrastructure/config"
	"gh-pr-mirror/internal/infrastructure/http/handlers/events"
	"gh-pr-mirror/internal/infrastructure/http/handlers/issue"
	"gh-pr-mirror/internal/infrastructure/http/handlers/pullrequest"
	"gh-pr-mirror/internal/infrastructure/http/handlers/repository"
	middlewares "gh-pr-mirror/internal/infrastructure/http/middleware"
	"gh-pr-mirror/internal/infrastructure/logger"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sourcegraph/conc"
)

// Services bundles the input ports the HTTP layer drives.
type Services struct {
	Repositories input.RepositoryInputPort
	PullRequests input.PullRequestInputPort
	Issues       input.IssueInputPort
	Remotes      input.RemoteInputPort
	Events       events.Subscriber
	Account      models.Account
}

type Router struct {
	router     *chi.Mux
	log        *logger.Logger
	svc        Services
	background *conc.WaitGroup
}

func NewRouter(log *logger.Logger, svc Services) *Router {
	return &Router{
		router:     chi.NewRouter(),
		log:        log,
		svc:        svc,
		background: &conc.WaitGroup{},
	}
}

func (r *Router) Setup(cfg *config.Config) {
	r.router.Use(chiMiddleware.RequestID)
	r.router.Use(chiMiddleware.RealIP)
	r.router.Use(chiMiddleware.Recoverer)
	r.router.Use(middlewares.RequestLoggerMiddleware(r.log))

	// The event stream is long-lived and stays outside the request timeout.
	r.router.Get("/events", events.NewEventsHandler(r.svc.Events, r.log).Stream)

	r.router.Group(func(g chi.Router) {
		g.Use(chiMiddleware.Timeout(cfg.HTTPServer.RequestTimeout))
		g.Mount("/repositories", r.setupRepositoryRoutes())
	})
}

func (r *Router) setupRepositoryRoutes() http.Handler {
	repos := repository.NewRepositoryHandler(r.svc.Repositories, r.svc.PullRequests, r.svc.Remotes, r.svc.Account, r.log)
	prs := pullrequest.NewPullRequestHandler(r.svc.Repositories, r.svc.PullRequests, r.svc.Account, r.background, r.log)
	issues := issue.NewIssueHandler(r.svc.Repositories, r.svc.Issues, r.svc.Account, r.log)

	sub := chi.NewRouter()
	sub.Post("/", repos.AddRepository)
	sub.Get("/", repos.ListRepositories)
	sub.Route("/{id}", func(rr chi.Router) {
		rr.Get("/", repos.GetRepository)
		rr.Patch("/", repos.UpdateRepository)
		rr.Post("/refresh", repos.RefreshRepository)
		rr.Post("/github", repos.LinkRepository)
		rr.Post("/remotes/prune", repos.PruneRemotes)
		rr.Post("/remotes/upstream", repos.AddUpstreamRemote)

		rr.Post("/pulls/refresh", prs.RefreshPullRequests)
		rr.Get("/pulls", prs.ListPullRequests)
		rr.Get("/pulls/fetching", prs.IsFetching)

		rr.Post("/issues/refresh", issues.RefreshIssues)
		rr.Get("/issues", issues.ListIssues)
	})
	return sub
}

func (r *Router) GetRouter() *chi.Mux { return r.router }

// WaitBackground blocks until detached refreshes started by handlers finish
// or ctx is done.
func (r *Router) WaitBackground(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.background.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
