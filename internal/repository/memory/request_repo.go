package memory

import (
	"context"
	"sync"
	"time"

	"go-mentorship-backend/internal/domain"
)

type requestRepository struct {
	mu       sync.RWMutex
	requests map[string]*domain.MentorshipRequest
	order    []string
}

func NewRequestRepository() *requestRepository {
	return &requestRepository{requests: make(map[string]*domain.MentorshipRequest)}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.MentorshipRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *req
	r.requests[req.ID] = &cp
	r.order = append(r.order, req.ID)
	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.MentorshipRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r *requestRepository) ListByMentor(ctx context.Context, mentorID string) ([]domain.MentorshipRequest, error) {
	return r.list(func(req *domain.MentorshipRequest) bool { return req.MentorID == mentorID })
}

func (r *requestRepository) ListByRequester(ctx context.Context, requesterID string) ([]domain.MentorshipRequest, error) {
	return r.list(func(req *domain.MentorshipRequest) bool { return req.RequesterID == requesterID })
}

func (r *requestRepository) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]domain.MentorshipRequest, error) {
	return r.list(func(req *domain.MentorshipRequest) bool {
		return req.Status == domain.RequestStatusPending && req.CreatedAt.Before(cutoff)
	})
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil
	}
	req.Status = status
	req.UpdatedAt = time.Now()
	return nil
}

func (r *requestRepository) list(match func(*domain.MentorshipRequest) bool) ([]domain.MentorshipRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.MentorshipRequest
	for _, id := range r.order {
		if req := r.requests[id]; match(req) {
			out = append(out, *req)
		}
	}
	return out, nil
}
