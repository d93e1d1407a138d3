package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gh-pr-mirror/internal/domain/models"
	ports "gh-pr-mirror/internal/domain/ports/output"
	github_port "gh-pr-mirror/internal/domain/ports/output/github"
	"gh-pr-mirror/internal/infrastructure/config"
	"gh-pr-mirror/internal/utils"

	"github.com/cli/go-gh/v2/pkg/api"
)

const (
	perPage  = 100
	maxPages = 50

	defaultTimeout = 30 * time.Second
)

var _ github_port.API = (*Client)(nil)

// Client talks to the GitHub REST API through go-gh.
type Client struct {
	rest    *api.RESTClient
	baseURL string
	log     ports.Logger
}

func NewClient(rest *api.RESTClient, baseURL string, log ports.Logger) *Client {
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{rest: rest, baseURL: baseURL, log: log}
}

func (c *Client) FetchPullRequests(ctx context.Context, owner string, name string, state string) ([]models.APIPullRequest, error) {
	q := url.Values{}
	q.Set("state", state)
	path := fmt.Sprintf("repos/%s/%s/pulls", owner, name)
	var out []models.APIPullRequest
	err := c.paginate(ctx, path, func(page int) (int, error) {
		var batch []models.APIPullRequest
		if err := c.get(ctx, path, withPage(q, page), &batch); err != nil {
			return 0, err
		}
		out = append(out, batch...)
		return len(batch), nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchCombinedStatus(ctx context.Context, owner string, name string, sha string) (*models.APICombinedStatus, error) {
	var status models.APICombinedStatus
	if err := c.get(ctx, fmt.Sprintf("repos/%s/%s/commits/%s/status", owner, name, sha), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) FetchRepository(ctx context.Context, owner string, name string) (*models.APIRepository, error) {
	var repo models.APIRepository
	if err := c.get(ctx, fmt.Sprintf("repos/%s/%s", owner, name), nil, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

func (c *Client) FetchIssues(ctx context.Context, owner string, name string, state string, since *time.Time) ([]models.APIIssue, error) {
	q := url.Values{}
	q.Set("state", state)
	if since != nil {
		q.Set("since", since.UTC().Format(time.RFC3339))
	}
	path := fmt.Sprintf("repos/%s/%s/issues", owner, name)
	var out []models.APIIssue
	err := c.paginate(ctx, path, func(page int) (int, error) {
		var batch []models.APIIssue
		if err := c.get(ctx, path, withPage(q, page), &batch); err != nil {
			return 0, err
		}
		out = append(out, batch...)
		return len(batch), nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) paginate(ctx context.Context, path string, fetch func(page int) (int, error)) error {
	for page := 1; page <= maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := fetch(page)
		if err != nil {
			return err
		}
		if n < perPage {
			return nil
		}
	}
	c.log.Warn("pagination limit reached", "path", path, "pages", maxPages)
	return fmt.Errorf("%w: GET %s: listing exceeds %d pages", utils.ErrRemoteAPI, path, maxPages)
}

func withPage(q url.Values, page int) url.Values {
	out := url.Values{}
	for k, v := range q {
		out[k] = v
	}
	out.Set("per_page", strconv.Itoa(perPage))
	out.Set("page", strconv.Itoa(page))
	return out
}

func (c *Client) get(ctx context.Context, path string, q url.Values, resp any) error {
	p := c.baseURL + path
	if len(q) > 0 {
		p += "?" + q.Encode()
	}
	c.log.Debug("github request", "method", http.MethodGet, "path", path)
	if err := c.rest.DoWithContext(ctx, http.MethodGet, p, nil, resp); err != nil {
		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) {
			c.log.Warn("github request failed", "path", path, "status", httpErr.StatusCode, "message", httpErr.Message)
			return fmt.Errorf("%w: GET %s: %d %s", utils.ErrRemoteAPI, path, httpErr.StatusCode, httpErr.Message)
		}
		return fmt.Errorf("%w: GET %s: %s", utils.ErrRemoteAPI, path, err)
	}
	return nil
}

// ClientFactory builds API clients per account, falling back to the
// configured host and token.
type ClientFactory struct {
	cfg config.GitHub
	log ports.Logger
}

var _ github_port.ClientFactory = (*ClientFactory)(nil)

func NewClientFactory(cfg config.GitHub, log ports.Logger) *ClientFactory {
	return &ClientFactory{cfg: cfg, log: log}
}

func (f *ClientFactory) ForAccount(account models.Account) (github_port.API, error) {
	host := f.cfg.Host
	if account.Endpoint != "" {
		host = HostFromEndpoint(account.Endpoint)
	}
	token := account.Token
	if token == "" {
		token = f.cfg.Token
	}
	rest, err := api.NewRESTClient(api.ClientOptions{
		Host:      host,
		AuthToken: token,
		Timeout:   defaultTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create github client for %s: %w", host, err)
	}
	return NewClient(rest, f.cfg.APIURL, f.log.With("host", host)), nil
}

// HostFromEndpoint turns an API endpoint (https://api.github.com,
// https://ghe.example.com/api/v3) into the hostname go-gh expects.
func HostFromEndpoint(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(endpoint, "/")
	}
	if u.Host == "api.github.com" {
		return "github.com"
	}
	return u.Host
}

// EndpointForHost is the inverse of HostFromEndpoint.
func EndpointForHost(host string) string {
	if host == "" || host == "github.com" {
		return "https://api.github.com"
	}
	return "https://" + host + "/api/v3"
}
