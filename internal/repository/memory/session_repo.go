package memory

import (
	"context"
	"sync"
	"time"

	"go-mentorship-backend/internal/domain"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	order    []string
}

func NewSessionRepository() *sessionRepository {
	return &sessionRepository{sessions: make(map[string]*domain.Session)}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *session
	r.sessions[session.ID] = &cp
	r.order = append(r.order, session.ID)
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *sessionRepository) GetByRequestID(ctx context.Context, requestID string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if s := r.sessions[id]; s.RequestID == requestID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *sessionRepository) ListByUser(ctx context.Context, userID string) ([]domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Session
	for _, id := range r.order {
		if s := r.sessions[id]; s.Party(userID) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *sessionRepository) Update(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[session.ID]; !ok {
		return nil
	}
	cp := *session
	cp.UpdatedAt = time.Now()
	r.sessions[session.ID] = &cp
	return nil
}
