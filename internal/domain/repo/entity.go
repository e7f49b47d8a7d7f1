package repo

// RepositorySummary is an immutable snapshot of one upstream repository
type RepositorySummary struct {
	name  string
	stars int
}

// NewRepositorySummary creates a RepositorySummary. Negative star counts are floored to zero.
func NewRepositorySummary(name string, stars int) RepositorySummary {
	if stars < 0 {
		stars = 0
	}
	return RepositorySummary{name: name, stars: stars}
}

func (r RepositorySummary) Name() string {
	return r.name
}

func (r RepositorySummary) Stars() int {
	return r.stars
}

// PagedRepositoryResult is one page of a user's repositories
type PagedRepositoryResult struct {
	username     Username
	repositories []RepositorySummary
}

// NewPagedRepositoryResult creates a page result, keeping the upstream order
func NewPagedRepositoryResult(username Username, repositories []RepositorySummary) *PagedRepositoryResult {
	items := make([]RepositorySummary, len(repositories))
	copy(items, repositories)
	return &PagedRepositoryResult{
		username:     username,
		repositories: items,
	}
}

func (p *PagedRepositoryResult) Username() Username {
	return p.username
}

// Repositories returns a copy of the page items
func (p *PagedRepositoryResult) Repositories() []RepositorySummary {
	items := make([]RepositorySummary, len(p.repositories))
	copy(items, p.repositories)
	return items
}

// Count returns the number of repositories on the page
func (p *PagedRepositoryResult) Count() int {
	return len(p.repositories)
}

// StarAggregate is the sum of stars across all of a user's repositories
type StarAggregate struct {
	total int
}

// SumStars adds up the stars of the given repositories
func SumStars(repositories []RepositorySummary) StarAggregate {
	var agg StarAggregate
	for _, r := range repositories {
		agg = agg.Add(r.Stars())
	}
	return agg
}

// Add returns a new aggregate with stars added. Negative values are ignored.
func (s StarAggregate) Add(stars int) StarAggregate {
	if stars < 0 {
		return s
	}
	return StarAggregate{total: s.total + stars}
}

func (s StarAggregate) Int() int {
	return s.total
}
