package repo

import (
	"fmt"
	"math"
	"strings"
)

// Username is a value object representing an upstream account login
type Username struct {
	value string
}

// NewUsername creates a new Username with validation. The login is kept
// exactly as given; surrounding whitespace is not stripped.
func NewUsername(username string) (Username, error) {
	if strings.TrimSpace(username) == "" {
		return Username{}, fmt.Errorf("username cannot be empty")
	}

	// Dot segments would be resolved away when building the upstream URL.
	if strings.Trim(username, ".") == "" {
		return Username{}, fmt.Errorf("username %q is not a valid login", username)
	}

	if strings.ContainsAny(username, "/?#") {
		return Username{}, fmt.Errorf("username %q contains reserved characters", username)
	}

	return Username{value: username}, nil
}

func (u Username) String() string {
	return u.value
}

// Page is a zero-based page number. It is never negative.
type Page struct {
	value int
}

// NewPage creates a Page, clamping negative numbers to zero
func NewPage(page int) Page {
	if page < 0 {
		page = 0
	}
	return Page{value: page}
}

func (p Page) Int() int {
	return p.value
}

// Upstream returns the one-based page number the upstream API expects.
// It saturates at math.MaxInt instead of wrapping negative.
func (p Page) Upstream() int {
	if p.value == math.MaxInt {
		return math.MaxInt
	}
	return p.value + 1
}
