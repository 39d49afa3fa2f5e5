package memory

import (
	"context"
	"sync"
	"time"

	"go-mentorship-backend/internal/domain"
)

// profileRepository is an in-memory profile store. It backs tests and local
// fixtures; production uses the postgres implementation.
type profileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile // keyed by user id
	order    []string                   // insertion order for stable listings

	// FailWith, when set, makes every read fail. Lets tests exercise the
	// degraded-snapshot path of the search index.
	FailWith error
}

func NewProfileRepository() *profileRepository {
	return &profileRepository{profiles: make(map[string]*domain.Profile)}
}

// Seed inserts profiles, replacing any existing entry for the same user.
func (r *profileRepository) Seed(profiles ...domain.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range profiles {
		p := p
		if _, ok := r.profiles[p.UserID]; !ok {
			r.order = append(r.order, p.UserID)
		}
		r.profiles[p.UserID] = &p
	}
}

func (r *profileRepository) Fail(err error) {
	r.mu.Lock()
	r.FailWith = err
	r.mu.Unlock()
}

func (r *profileRepository) ListByRole(ctx context.Context, role string) ([]domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	var out []domain.Profile
	for _, uid := range r.order {
		if p := r.profiles[uid]; p.Role == role {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.profiles[profile.UserID]
	if !ok {
		cp := *profile
		cp.CreatedAt = time.Now()
		cp.UpdatedAt = cp.CreatedAt
		r.profiles[profile.UserID] = &cp
		r.order = append(r.order, profile.UserID)
		return nil
	}
	avatar := existing.AvatarPNG
	cp := *profile
	cp.AvatarPNG = avatar
	cp.UpdatedAt = time.Now()
	r.profiles[profile.UserID] = &cp
	return nil
}

func (r *profileRepository) UpdateAvatar(ctx context.Context, userID string, png []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[userID]; ok {
		p.AvatarPNG = png
		p.UpdatedAt = time.Now()
	}
	return nil
}
