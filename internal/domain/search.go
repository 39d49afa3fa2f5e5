package domain

import "context"

// FilterAll is the sentinel meaning "no constraint" for a filter, distinct
// from any real department or skill name.
const FilterAll = "all"

// Search sort keys
const (
	SortByRating   = "rating"
	SortBySessions = "sessions"
	SortByName     = "name"
)

// SearchQuery is the per-invocation directory query. Zero values plus the
// "all" sentinels select the whole snapshot.
type SearchQuery struct {
	Term       string `form:"search"`
	Department string `form:"department"`
	Skill      string `form:"skill"`
	Sort       string `form:"sort"`
}

// SearchUsecase answers mentor directory queries from the current snapshot.
type SearchUsecase interface {
	SearchMentors(ctx context.Context, q SearchQuery) ([]Profile, error)
	AvailableSkills(ctx context.Context) ([]string, error)
	Refresh(ctx context.Context) error
}
