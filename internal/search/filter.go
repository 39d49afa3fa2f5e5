package search

import (
	"sort"
	"strings"

	"go-mentorship-backend/internal/domain"
)

// Filter applies a directory query to a mentor snapshot. It is a pure
// function: deterministic, no side effects, and stable (matching mentors
// keep the snapshot's relative order). An optional sort key is applied on
// top of the filtered sequence and never changes which mentors qualify.
func Filter(mentors []domain.Profile, q domain.SearchQuery) []domain.Profile {
	term := strings.ToLower(strings.TrimSpace(q.Term))

	result := make([]domain.Profile, 0, len(mentors))
	for _, m := range mentors {
		if !matchesTerm(&m, term) {
			continue
		}
		if !matchesDepartment(&m, q.Department) {
			continue
		}
		if !matchesSkill(&m, q.Skill) {
			continue
		}
		result = append(result, m)
	}

	applySort(result, q.Sort)
	return result
}

// matchesTerm: an empty term matches everything; otherwise the term must be
// a substring of the lower-cased full name or of at least one skill.
func matchesTerm(m *domain.Profile, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.FullName()), term) {
		return true
	}
	for _, s := range m.Skills {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

// Departments come from a closed set, so the comparison is exact.
func matchesDepartment(m *domain.Profile, dept string) bool {
	if dept == "" || dept == domain.FilterAll {
		return true
	}
	return m.Department == dept
}

// The skill filter value is a stored tag, so membership is exact too.
func matchesSkill(m *domain.Profile, skill string) bool {
	if skill == "" || skill == domain.FilterAll {
		return true
	}
	for _, s := range m.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

func applySort(mentors []domain.Profile, key string) {
	switch key {
	case domain.SortByRating:
		sort.SliceStable(mentors, func(a, b int) bool {
			if mentors[a].Rating != mentors[b].Rating {
				return mentors[a].Rating > mentors[b].Rating
			}
			return mentors[a].SessionCount > mentors[b].SessionCount
		})
	case domain.SortBySessions:
		sort.SliceStable(mentors, func(a, b int) bool {
			return mentors[a].SessionCount > mentors[b].SessionCount
		})
	case domain.SortByName:
		sort.SliceStable(mentors, func(a, b int) bool {
			return mentors[a].FullName() < mentors[b].FullName()
		})
	}
}
