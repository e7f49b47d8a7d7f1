package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"repo-gateway/internal/config"

	"github.com/google/go-github/v45/github"
	"golang.org/x/oauth2"
)

// DefaultPageSize is the number of repositories fetched per upstream page
const DefaultPageSize = 50

// Client handles GitHub API interactions for a single request.
// The page size is fixed at construction.
type Client struct {
	api      *github.Client
	pageSize int
}

// NewClient creates a GitHub API client from cfg.
// An empty token yields an unauthenticated client with GitHub's lower rate limit.
func NewClient(cfg *config.GitHubConfig) (*Client, error) {
	var httpClient *http.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = cfg.Timeout
	if httpClient.Timeout == 0 {
		httpClient.Timeout = 30 * time.Second
	}

	api := github.NewClient(httpClient)

	if cfg.BaseURL != "" {
		baseURL := cfg.BaseURL
		// go-github resolves paths relative to BaseURL, which needs a trailing slash
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL: %w", err)
		}
		api.BaseURL = u
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Client{
		api:      api,
		pageSize: pageSize,
	}, nil
}

// PageSize returns the fixed page size of this client
func (c *Client) PageSize() int {
	return c.pageSize
}

// ListUserRepositories fetches one page of a user's public repositories.
// page is one-based, as GitHub expects.
func (c *Client) ListUserRepositories(ctx context.Context, username string, page int) ([]*github.Repository, *github.Response, error) {
	opts := &github.RepositoryListOptions{
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: c.pageSize,
		},
	}

	return c.api.Repositories.List(ctx, url.PathEscape(username), opts)
}
