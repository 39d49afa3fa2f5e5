package usecase

import (
	"context"
	"fmt"
	"time"

	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/pkg/apperror"
	"go-mentorship-backend/pkg/logger"

	"github.com/google/uuid"
)

type requestUsecase struct {
	requestRepo domain.RequestRepository
	profileRepo domain.ProfileRepository
	sessionRepo domain.SessionRepository
	sink        domain.NotificationSink
	clock       domain.Clock
	locks       *keyedMutex
	expiry      time.Duration
}

// NewRequestUsecase creates the mentorship request lifecycle. Accepting a
// request derives its session through sessionRepo; sink receives one event
// per successful transition; expiry is the inactivity window after which a
// pending request can be expired.
func NewRequestUsecase(
	requestRepo domain.RequestRepository,
	profileRepo domain.ProfileRepository,
	sessionRepo domain.SessionRepository,
	sink domain.NotificationSink,
	clock domain.Clock,
	expiry time.Duration,
) domain.RequestUsecase {
	return &requestUsecase{
		requestRepo: requestRepo,
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		sink:        sink,
		clock:       clock,
		locks:       newKeyedMutex(),
		expiry:      expiry,
	}
}

// Submit creates a new request in pending state.
func (uc *requestUsecase) Submit(ctx context.Context, requesterID string, in domain.SubmitRequestInput) (*domain.MentorshipRequest, error) {
	// 1. Field validation, naming the offending field
	if err := validateSubmitInput(requesterID, in); err != nil {
		return nil, err
	}

	// 2. Target must exist and actually be a mentor
	mentor, err := uc.profileRepo.GetByUserID(ctx, in.MentorID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if mentor == nil {
		return nil, apperror.NotFound("Mentor not found")
	}
	if mentor.Role != domain.RoleMentor {
		return nil, apperror.BadRequest("Mentor: target user is not a mentor")
	}

	// 3. Create in pending
	now := uc.clock.Now()
	req := &domain.MentorshipRequest{
		ID:          uuid.NewString(),
		RequesterID: requesterID,
		MentorID:    in.MentorID,
		Subject:     in.Subject,
		SessionType: in.SessionType,
		Message:     in.Message,
		Date:        in.Date,
		TimeSlot:    in.TimeSlot,
		Status:      domain.RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.requestRepo.Create(ctx, req); err != nil {
		return nil, apperror.Internal(err)
	}

	uc.emit(domain.EntityRequest, req.ID, "", domain.RequestStatusPending)
	return req, nil
}

// Accept moves pending → accepted and derives the session. Only the target
// mentor may accept.
func (uc *requestUsecase) Accept(ctx context.Context, requestID, actingUserID string) (*domain.MentorshipRequest, error) {
	return uc.resolve(ctx, requestID, actingUserID, domain.RequestStatusAccepted)
}

// Decline moves pending → declined. Same guards as Accept, no session.
func (uc *requestUsecase) Decline(ctx context.Context, requestID, actingUserID string) (*domain.MentorshipRequest, error) {
	return uc.resolve(ctx, requestID, actingUserID, domain.RequestStatusDeclined)
}

// resolve holds the per-request lock across read, guard and write so racing
// accept/decline calls serialize: exactly one succeeds, the other observes
// the conflict.
func (uc *requestUsecase) resolve(ctx context.Context, requestID, actingUserID, target string) (*domain.MentorshipRequest, error) {
	unlock := uc.locks.Lock(requestID)
	defer unlock()

	req, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if req == nil {
		return nil, apperror.NotFound("Mentorship request not found")
	}
	if req.MentorID != actingUserID {
		return nil, apperror.Forbidden("Only the requested mentor can respond to this request")
	}
	if req.Terminal() {
		return nil, transitionConflict(domain.EntityRequest, req.ID, req.Status, target)
	}

	if err := uc.requestRepo.UpdateStatus(ctx, requestID, target); err != nil {
		return nil, apperror.Internal(err)
	}
	prev := req.Status
	req.Status = target
	req.UpdatedAt = uc.clock.Now()

	if target == domain.RequestStatusAccepted {
		if err := uc.deriveSession(ctx, req); err != nil {
			return nil, err
		}
	}

	uc.emit(domain.EntityRequest, req.ID, prev, target)
	return req, nil
}

// deriveSession creates the session for a freshly accepted request. A
// request has at most one derived session, so an existing one short-circuits.
func (uc *requestUsecase) deriveSession(ctx context.Context, req *domain.MentorshipRequest) error {
	existing, err := uc.sessionRepo.GetByRequestID(ctx, req.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	if existing != nil {
		return nil
	}

	now := uc.clock.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		RequestID: req.ID,
		MentorID:  req.MentorID,
		MenteeID:  req.RequesterID,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Topic:     req.Subject,
		Status:    domain.SessionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return apperror.Internal(err)
	}

	uc.emit(domain.EntitySession, session.ID, "", domain.SessionStatusPending)
	return nil
}

// Expire moves pending → expired. System-invoked and idempotent: expiring an
// already-terminal request is a no-op, not an error.
func (uc *requestUsecase) Expire(ctx context.Context, requestID string) error {
	unlock := uc.locks.Lock(requestID)
	defer unlock()

	req, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return apperror.Internal(err)
	}
	if req == nil {
		return apperror.NotFound("Mentorship request not found")
	}
	if req.Terminal() {
		return nil
	}

	if err := uc.requestRepo.UpdateStatus(ctx, requestID, domain.RequestStatusExpired); err != nil {
		return apperror.Internal(err)
	}

	uc.emit(domain.EntityRequest, req.ID, domain.RequestStatusPending, domain.RequestStatusExpired)
	return nil
}

// ExpireStale expires every pending request older than the inactivity
// window. Returns how many requests were expired. Driven by the expiry
// worker, never by user action.
func (uc *requestUsecase) ExpireStale(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-uc.expiry)
	stale, err := uc.requestRepo.ListPendingBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, req := range stale {
		if err := uc.Expire(ctx, req.ID); err != nil {
			logger.Log.Error("Failed to expire request", "request_id", req.ID, "error", err)
			continue
		}
		expired++
	}
	return expired, nil
}

func (uc *requestUsecase) ListInbox(ctx context.Context, mentorID string) ([]domain.MentorshipRequest, error) {
	return uc.requestRepo.ListByMentor(ctx, mentorID)
}

func (uc *requestUsecase) ListOutbox(ctx context.Context, requesterID string) ([]domain.MentorshipRequest, error) {
	return uc.requestRepo.ListByRequester(ctx, requesterID)
}

func (uc *requestUsecase) emit(kind, id, prev, next string) {
	if uc.sink == nil {
		return
	}
	uc.sink.Emit(domain.LifecycleEvent{
		EntityKind:     kind,
		EntityID:       id,
		PreviousStatus: prev,
		NewStatus:      next,
		Timestamp:      uc.clock.Now(),
	})
}

func validateSubmitInput(requesterID string, in domain.SubmitRequestInput) error {
	if in.MentorID == "" {
		return apperror.BadRequest("Mentor is required")
	}
	if requesterID == in.MentorID {
		return apperror.BadRequest("Mentor: you cannot send a mentorship request to yourself")
	}
	if in.Subject == "" {
		return apperror.BadRequest("Subject is required")
	}
	if in.Message == "" {
		return apperror.BadRequest("Message is required")
	}
	if !domain.ValidSessionType(in.SessionType) {
		return apperror.BadRequest("Session Type is not a known session type")
	}
	if in.Date == "" {
		return apperror.BadRequest("Preferred Date is required")
	}
	if !domain.ValidTimeSlot(in.TimeSlot) {
		return apperror.BadRequest("Preferred Time is not a bookable time slot")
	}
	return nil
}

// transitionConflict builds the InvalidTransition error, identifying the
// entity and the attempted transition as required for user-visible failures.
func transitionConflict(kind, id, current, attempted string) error {
	return apperror.Conflict(fmt.Sprintf(
		"Cannot move %s %s to %s: current status is %s", kind, id, attempted, current))
}
