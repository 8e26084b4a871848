package listing

import (
	"strings"
	"time"
)

// All is the filter value that matches every status or category.
const All = "all"

// Filter is the view-state a user selects on a list screen.
type Filter struct {
	SearchTerm string
	Status     string
	Category   string
}

// DefaultFilter returns the filter that matches every record.
func DefaultFilter() Filter {
	return Filter{Status: All, Category: All}
}

// IsDefault reports whether the filter matches every record.
func (f Filter) IsDefault() bool {
	return f.SearchTerm == "" && isAll(f.Status) && isAll(f.Category)
}

// Record is the view of a record the predicate and summarizer need.
type Record interface {
	// SearchFields returns the fields the search term is matched against.
	SearchFields() []string
	StatusValue() string
	// CategoryValue is the category of a perk or the sector of an application.
	CategoryValue() string
	Timestamp() time.Time
}

// Matches reports whether r passes every part of f: a case-insensitive
// substring match of the search term over the search fields, and exact
// matches of the status and category filters.
func Matches(r Record, f Filter) bool {
	return matchesSearch(r, f.SearchTerm) &&
		matchesExact(r.StatusValue(), f.Status) &&
		matchesExact(r.CategoryValue(), f.Category)
}

func matchesSearch(r Record, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, field := range r.SearchFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchesExact(value, want string) bool {
	return isAll(want) || value == want
}

// isAll treats the zero value like All so a zero Filter matches everything.
func isAll(v string) bool {
	return v == "" || v == All
}
