package dto

// RepositoryResponse represents one repository in API responses
type RepositoryResponse struct {
	Name  string `json:"name" example:"repo1"`
	Stars int    `json:"stars" example:"22"`
}

// RepositoryListResponse represents one page of a user's repositories
type RepositoryListResponse struct {
	Repositories      []RepositoryResponse `json:"repositories"`
	RepositoriesCount int                  `json:"repositories_count" example:"3"`
	Username          string               `json:"username" example:"octocat"`
}

// StarsResponse represents the total stars across all of a user's repositories
type StarsResponse struct {
	Username string `json:"username" example:"octocat"`
	Stars    int    `json:"stars" example:"23"`
}
