package github

import (
	"context"
	"errors"
	"net/http"
	"time"

	"repo-gateway/internal/domain/repo"
	"repo-gateway/internal/github"
	"repo-gateway/internal/metrics"

	gh "github.com/google/go-github/v45/github"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "repo-gateway/internal/infrastructure/github"

// Metric operation labels
const (
	operationListPage = "list_repositories_page"
	operationSumStars = "sum_all_repository_stars"
)

// GitHubServiceImpl implements the domain repo.GitHubService interface.
// It is the only place where go-github errors are interpreted.
type GitHubServiceImpl struct {
	client    *github.Client
	collector metrics.Collector
	tracer    trace.Tracer
}

// NewGitHubService creates a new GitHub service implementation
func NewGitHubService(client *github.Client, collector metrics.Collector) repo.GitHubService {
	if collector == nil {
		collector = metrics.NewNopCollector()
	}
	return &GitHubServiceImpl{
		client:    client,
		collector: collector,
		tracer:    otel.Tracer(tracerName),
	}
}

// ListRepositoriesPage fetches one page of the user's repositories
func (g *GitHubServiceImpl) ListRepositoriesPage(ctx context.Context, username repo.Username, page repo.Page) ([]repo.RepositorySummary, error) {
	ctx, span := g.tracer.Start(ctx, "github.ListRepositoriesPage", trace.WithAttributes(
		attribute.String("github.username", username.String()),
		attribute.Int("github.page", page.Int()),
		attribute.Int("github.per_page", g.client.PageSize()),
	))
	defer span.End()

	githubRepos, err := g.fetchPage(ctx, operationListPage, username, page.Upstream())
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	// A page never holds more than the configured page size
	if len(githubRepos) > g.client.PageSize() {
		githubRepos = githubRepos[:g.client.PageSize()]
	}

	summaries := convertRepositories(githubRepos)
	span.SetAttributes(attribute.Int("github.repositories", len(summaries)))
	return summaries, nil
}

// SumAllRepositoryStars walks every page of the user's repositories.
// The number of upstream calls grows with the number of repositories.
// The first failing page aborts the walk.
func (g *GitHubServiceImpl) SumAllRepositoryStars(ctx context.Context, username repo.Username) (repo.StarAggregate, error) {
	ctx, span := g.tracer.Start(ctx, "github.SumAllRepositoryStars", trace.WithAttributes(
		attribute.String("github.username", username.String()),
		attribute.Int("github.per_page", g.client.PageSize()),
	))
	defer span.End()

	var total repo.StarAggregate
	pages := 0
	for next := 1; next != 0; {
		githubRepos, resp, err := g.fetchPageWithResponse(ctx, operationSumStars, username, next)
		if err != nil {
			recordSpanError(span, err)
			return repo.StarAggregate{}, err
		}
		pages++

		total = total.Add(repo.SumStars(convertRepositories(githubRepos)).Int())

		// An empty page ends the walk even if a next link is advertised
		if len(githubRepos) == 0 {
			break
		}
		next = resp.NextPage
	}

	span.SetAttributes(
		attribute.Int("github.pages", pages),
		attribute.Int("github.stars", total.Int()),
	)
	return total, nil
}

func (g *GitHubServiceImpl) fetchPage(ctx context.Context, operation string, username repo.Username, upstreamPage int) ([]*gh.Repository, error) {
	githubRepos, _, err := g.fetchPageWithResponse(ctx, operation, username, upstreamPage)
	return githubRepos, err
}

// fetchPageWithResponse performs a single upstream call and translates its error
func (g *GitHubServiceImpl) fetchPageWithResponse(ctx context.Context, operation string, username repo.Username, upstreamPage int) ([]*gh.Repository, *gh.Response, error) {
	start := time.Now()
	githubRepos, resp, err := g.client.ListUserRepositories(ctx, username.String(), upstreamPage)
	if err != nil {
		upstreamErr := translateError(err)
		g.collector.ObserveUpstreamCall(operation, string(upstreamErr.Kind), time.Since(start))
		return nil, nil, upstreamErr
	}
	g.collector.ObserveUpstreamCall(operation, metrics.OutcomeSuccess, time.Since(start))

	return githubRepos, resp, nil
}

// translateError maps a go-github failure onto the domain error taxonomy.
// Anything not recognized becomes KindUnknownUpstreamFailure with the
// original error kept intact.
func translateError(err error) *repo.UpstreamError {
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return repo.ErrRateLimitExceeded(responseStatus(rateLimitErr.Response), err)
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return repo.ErrRateLimitExceeded(responseStatus(abuseErr.Response), err)
	}

	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) {
		status := responseStatus(errResp.Response)
		switch status {
		case http.StatusUnauthorized:
			return repo.ErrBadCredentials(status, err)
		case http.StatusNotFound:
			return repo.ErrUserNotFound(status, err)
		case http.StatusTooManyRequests:
			return repo.ErrRateLimitExceeded(status, err)
		case http.StatusUnprocessableEntity:
			return repo.ErrUnprocessableRequest(errResp.Message, status, err)
		default:
			return repo.ErrUnknownUpstreamFailure(status, err)
		}
	}

	return repo.ErrUnknownUpstreamFailure(0, err)
}

func responseStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// convertRepositories converts GitHub repositories to domain summaries
func convertRepositories(githubRepos []*gh.Repository) []repo.RepositorySummary {
	summaries := make([]repo.RepositorySummary, 0, len(githubRepos))
	for _, r := range githubRepos {
		summaries = append(summaries, repo.NewRepositorySummary(r.GetName(), r.GetStargazersCount()))
	}
	return summaries
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if kind, ok := repo.KindOf(err); ok {
		span.SetAttributes(attribute.String("github.error_kind", string(kind)))
	}
}
