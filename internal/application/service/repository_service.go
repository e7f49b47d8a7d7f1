package service

import (
	"context"
	"fmt"

	"repo-gateway/internal/application/dto"
	"repo-gateway/internal/domain/repo"
)

// RepositoryService handles repository query use cases.
// It never recovers from upstream errors; they propagate unchanged in kind.
type RepositoryService struct {
	newClient repo.ClientFactory
}

// NewRepositoryService creates a new repository service
func NewRepositoryService(newClient repo.ClientFactory) *RepositoryService {
	return &RepositoryService{
		newClient: newClient,
	}
}

// GetUserRepositoriesPage returns one page of a user's repositories.
// A negative page is clamped to 0; there is no upper bound check, the
// upstream platform decides what an out-of-range page returns.
func (s *RepositoryService) GetUserRepositoriesPage(ctx context.Context, username string, requestedPage int) (*dto.RepositoryListResponse, error) {
	name, err := repo.NewUsername(username)
	if err != nil {
		return nil, repo.ErrUserNotFound(0, err)
	}

	client, err := s.newClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	repositories, err := client.ListRepositoriesPage(ctx, name, repo.NewPage(requestedPage))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories for %s: %w", name, err)
	}

	return s.toListDTO(repo.NewPagedRepositoryResult(name, repositories)), nil
}

// GetUserTotalStars returns the sum of stars across all of a user's repositories
func (s *RepositoryService) GetUserTotalStars(ctx context.Context, username string) (*dto.StarsResponse, error) {
	name, err := repo.NewUsername(username)
	if err != nil {
		return nil, repo.ErrUserNotFound(0, err)
	}

	client, err := s.newClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	total, err := client.SumAllRepositoryStars(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to sum stars for %s: %w", name, err)
	}

	return &dto.StarsResponse{
		Username: name.String(),
		Stars:    total.Int(),
	}, nil
}

// toListDTO converts a domain page result to DTO
func (s *RepositoryService) toListDTO(result *repo.PagedRepositoryResult) *dto.RepositoryListResponse {
	repositories := result.Repositories()

	items := make([]dto.RepositoryResponse, len(repositories))
	for i, r := range repositories {
		items[i] = dto.RepositoryResponse{
			Name:  r.Name(),
			Stars: r.Stars(),
		}
	}

	return &dto.RepositoryListResponse{
		Repositories:      items,
		RepositoriesCount: result.Count(),
		Username:          result.Username().String(),
	}
}
