package repo

import (
	"context"
)

// GitHubService is a domain service interface for reading repository data from GitHub.
// Implementations translate every upstream failure into an *UpstreamError.
type GitHubService interface {
	// ListRepositoriesPage fetches exactly one page of a user's repositories, in upstream order
	ListRepositoriesPage(ctx context.Context, username Username, page Page) ([]RepositorySummary, error)

	// SumAllRepositoryStars walks every page of a user's repositories and sums their stars
	SumAllRepositoryStars(ctx context.Context, username Username) (StarAggregate, error)
}

// ClientFactory builds a fresh GitHubService. It is called once per request
// so no client state is shared between requests.
type ClientFactory func() (GitHubService, error)
