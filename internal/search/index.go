package search

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go-mentorship-backend/internal/domain"
)

// Index maintains a read-only snapshot of all mentor profiles. Readers are
// never blocked by a refresh: the snapshot is swapped only after a load
// completes successfully, so callers either see the previous consistent
// snapshot or the new one, never a partial load.
type Index struct {
	store domain.ProfileRepository

	mu      sync.RWMutex
	mentors []domain.Profile
	loaded  bool
}

func NewIndex(store domain.ProfileRepository) *Index {
	return &Index{store: store}
}

// Refresh reloads the mentor snapshot from the profile store. On failure the
// previous snapshot is retained and the error is returned for observability;
// it is never surfaced through the filtering path.
func (i *Index) Refresh(ctx context.Context) error {
	mentors, err := i.store.ListByRole(ctx, domain.RoleMentor)
	if err != nil {
		return err
	}

	i.mu.Lock()
	i.mentors = mentors
	i.loaded = true
	i.mu.Unlock()
	return nil
}

// CurrentMentors returns the last-known snapshot. Before the first
// successful load it returns an empty slice. The returned slice must not be
// mutated by callers.
func (i *Index) CurrentMentors() []domain.Profile {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if !i.loaded {
		return []domain.Profile{}
	}
	return i.mentors
}

// AvailableSkills returns the union of all mentors' skills, deduplicated
// case-insensitively and sorted lexicographically for stable display order.
func (i *Index) AvailableSkills() []string {
	mentors := i.CurrentMentors()

	seen := make(map[string]string)
	for _, m := range mentors {
		for _, s := range m.Skills {
			key := strings.ToLower(s)
			if _, ok := seen[key]; !ok {
				seen[key] = s
			}
		}
	}

	skills := make([]string, 0, len(seen))
	for _, s := range seen {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}
