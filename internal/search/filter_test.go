package search_test

import (
	"testing"

	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/internal/search"

	"github.com/stretchr/testify/assert"
)

// Fixture mentors, modeled on the demo directory the product screens use.
func fixtureMentors() []domain.Profile {
	return []domain.Profile{
		{
			ID: "m1", UserID: "u1", FirstName: "Sarah", LastName: "Chen",
			Role: domain.RoleMentor, Title: "Senior Software Engineer",
			Department: "Computer Science",
			Skills:     []string{"React", "Python", "System Design", "Leadership"},
			Rating:     4.9, SessionCount: 45,
		},
		{
			ID: "m2", UserID: "u2", FirstName: "Michael", LastName: "Rodriguez",
			Role: domain.RoleMentor, Title: "Product Manager",
			Department: "Product Management",
			Skills:     []string{"Strategy", "Analytics", "User Research", "Agile"},
			Rating:     4.8, SessionCount: 32,
		},
		{
			ID: "m3", UserID: "u3", FirstName: "Emily", LastName: "Watson",
			Role: domain.RoleMentor, Title: "Data Science Manager",
			Department: "Data Science",
			Skills:     []string{"Machine Learning", "Python", "SQL", "Visualization"},
			Rating:     4.7, SessionCount: 28,
		},
		{
			ID: "m4", UserID: "u4", FirstName: "James", LastName: "Liu",
			Role: domain.RoleMentor, Title: "UX Design Lead",
			Department: "Design",
			Skills:     []string{"UI/UX", "Figma", "User Research", "Prototyping"},
			Rating:     4.9, SessionCount: 38,
		},
	}
}

func ids(mentors []domain.Profile) []string {
	out := make([]string, len(mentors))
	for i, m := range mentors {
		out[i] = m.ID
	}
	return out
}

func TestFilterDefaults(t *testing.T) {
	mentors := fixtureMentors()

	t.Run("All-default query returns the snapshot unchanged in order", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{
			Term:       "",
			Department: domain.FilterAll,
			Skill:      domain.FilterAll,
		})
		assert.Equal(t, ids(mentors), ids(got))
	})

	t.Run("Empty filter strings behave like the all sentinel", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{})
		assert.Equal(t, ids(mentors), ids(got))
	})
}

func TestFilterTextTerm(t *testing.T) {
	mentors := fixtureMentors()

	t.Run("Term matches a skill case-insensitively", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{
			Term: "react", Department: domain.FilterAll, Skill: domain.FilterAll,
		})
		assert.Equal(t, []string{"m1"}, ids(got))
		assert.Equal(t, "Sarah Chen", got[0].FullName())
	})

	t.Run("Term matches name substrings across first and last name", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{Term: "rah che"})
		assert.Equal(t, []string{"m1"}, ids(got))
	})

	t.Run("Every result carries the term in name or a skill", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{Term: "python"})
		assert.Equal(t, []string{"m1", "m3"}, ids(got))
	})

	t.Run("Surrounding whitespace is trimmed", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{Term: "  PYTHON  "})
		assert.Equal(t, []string{"m1", "m3"}, ids(got))
	})

	t.Run("Unmatched term yields empty, not error", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{Term: "blockchain"})
		assert.Empty(t, got)
	})
}

func TestFilterDepartmentAndSkill(t *testing.T) {
	mentors := fixtureMentors()

	t.Run("Department filter is exact", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{Department: "Design"})
		assert.Equal(t, []string{"m4"}, ids(got))
	})

	t.Run("Department comparison is case-sensitive", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{Department: "design"})
		assert.Empty(t, got)
	})

	t.Run("Skill filter is exact set membership", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{Skill: "User Research"})
		assert.Equal(t, []string{"m2", "m4"}, ids(got))
	})

	t.Run("Skill filter does not substring-match", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{Skill: "User"})
		assert.Empty(t, got)
	})

	t.Run("Predicates combine with AND", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{
			Term:       "python",
			Department: "Data Science",
			Skill:      "SQL",
		})
		assert.Equal(t, []string{"m3"}, ids(got))
	})
}

func TestFilterDeterminism(t *testing.T) {
	mentors := fixtureMentors()
	q := domain.SearchQuery{Term: "python", Sort: domain.SortByRating}

	first := search.Filter(mentors, q)
	second := search.Filter(mentors, q)
	assert.Equal(t, ids(first), ids(second))
}

func TestFilterSort(t *testing.T) {
	mentors := fixtureMentors()

	t.Run("Rating sort is descending with session-count tiebreak", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{Sort: domain.SortByRating})
		// m1 and m4 share 4.9; m1 has more sessions
		assert.Equal(t, []string{"m1", "m4", "m2", "m3"}, ids(got))
	})

	t.Run("Sessions sort is descending", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{Sort: domain.SortBySessions})
		assert.Equal(t, []string{"m1", "m4", "m2", "m3"}, ids(got))
	})

	t.Run("Name sort is ascending by full name", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{Sort: domain.SortByName})
		assert.Equal(t, []string{"m3", "m4", "m2", "m1"}, ids(got))
	})

	t.Run("Sort applies after filtering without changing membership", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{Term: "python", Sort: domain.SortByName})
		assert.Equal(t, []string{"m3", "m1"}, ids(got))
	})

	t.Run("Unknown sort key keeps snapshot order", func(t *testing.T) {
		got := search.Filter(mentors, domain.SearchQuery{Sort: "price-low"})
		assert.Equal(t, ids(mentors), ids(got))
	})
}

func TestFilterDoesNotMutateSnapshot(t *testing.T) {
	mentors := fixtureMentors()
	_ = search.Filter(mentors, domain.SearchQuery{Sort: domain.SortByName})
	assert.Equal(t, "m1", mentors[0].ID)
}
