package usecase

import (
	"context"

	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/pkg/apperror"
)

type sessionUsecase struct {
	sessionRepo domain.SessionRepository
	sink        domain.NotificationSink
	clock       domain.Clock
	locks       *keyedMutex
}

// NewSessionUsecase creates the session scheduling lifecycle. Sessions are
// created by the request lifecycle on acceptance; this usecase only governs
// the transitions of existing sessions.
func NewSessionUsecase(
	sessionRepo domain.SessionRepository,
	sink domain.NotificationSink,
	clock domain.Clock,
) domain.SessionUsecase {
	return &sessionUsecase{
		sessionRepo: sessionRepo,
		sink:        sink,
		clock:       clock,
		locks:       newKeyedMutex(),
	}
}

// Confirm moves pending → confirmed. Either party may confirm.
func (uc *sessionUsecase) Confirm(ctx context.Context, sessionID, actingUserID string) (*domain.Session, error) {
	return uc.transition(ctx, sessionID, actingUserID, domain.SessionStatusConfirmed,
		func(s *domain.Session) error {
			if s.Status != domain.SessionStatusPending {
				return transitionConflict(domain.EntitySession, s.ID, s.Status, domain.SessionStatusConfirmed)
			}
			return nil
		})
}

// Cancel moves pending or confirmed → cancelled. Cancelling an already
// cancelled session is a no-op; a completed session cannot be cancelled.
func (uc *sessionUsecase) Cancel(ctx context.Context, sessionID, actingUserID string) (*domain.Session, error) {
	unlock := uc.locks.Lock(sessionID)
	defer unlock()

	session, err := uc.load(ctx, sessionID, actingUserID)
	if err != nil {
		return nil, err
	}

	switch session.Status {
	case domain.SessionStatusCancelled:
		return session, nil
	case domain.SessionStatusCompleted:
		return nil, transitionConflict(domain.EntitySession, session.ID, session.Status, domain.SessionStatusCancelled)
	}

	return uc.apply(ctx, session, domain.SessionStatusCancelled)
}

// Complete moves confirmed → completed. A session must be confirmed before
// it can be completed.
func (uc *sessionUsecase) Complete(ctx context.Context, sessionID, actingUserID string) (*domain.Session, error) {
	return uc.transition(ctx, sessionID, actingUserID, domain.SessionStatusCompleted,
		func(s *domain.Session) error {
			if s.Status != domain.SessionStatusConfirmed {
				return transitionConflict(domain.EntitySession, s.ID, s.Status, domain.SessionStatusCompleted)
			}
			return nil
		})
}

// Reschedule updates date and slot without changing status. Allowed while
// the session is still pending or confirmed.
func (uc *sessionUsecase) Reschedule(ctx context.Context, sessionID, actingUserID, newDate, newSlot string) (*domain.Session, error) {
	if newDate == "" {
		return nil, apperror.BadRequest("Preferred Date is required")
	}
	if !domain.ValidTimeSlot(newSlot) {
		return nil, apperror.BadRequest("Preferred Time is not a bookable time slot")
	}

	unlock := uc.locks.Lock(sessionID)
	defer unlock()

	session, err := uc.load(ctx, sessionID, actingUserID)
	if err != nil {
		return nil, err
	}

	if session.Status == domain.SessionStatusCompleted || session.Status == domain.SessionStatusCancelled {
		return nil, transitionConflict(domain.EntitySession, session.ID, session.Status, "rescheduled "+session.Status)
	}

	session.Date = newDate
	session.TimeSlot = newSlot
	session.UpdatedAt = uc.clock.Now()
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return nil, apperror.Internal(err)
	}

	// Status unchanged; still emit so both parties see the change
	uc.emit(session.ID, session.Status, session.Status)
	return session, nil
}

func (uc *sessionUsecase) ListMine(ctx context.Context, userID string) ([]domain.Session, error) {
	return uc.sessionRepo.ListByUser(ctx, userID)
}

// transition applies a guarded status move under the per-session lock.
func (uc *sessionUsecase) transition(ctx context.Context, sessionID, actingUserID, target string, guard func(*domain.Session) error) (*domain.Session, error) {
	unlock := uc.locks.Lock(sessionID)
	defer unlock()

	session, err := uc.load(ctx, sessionID, actingUserID)
	if err != nil {
		return nil, err
	}
	if err := guard(session); err != nil {
		return nil, err
	}
	return uc.apply(ctx, session, target)
}

// load fetches the session and checks the actor is one of its parties.
func (uc *sessionUsecase) load(ctx context.Context, sessionID, actingUserID string) (*domain.Session, error) {
	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if session == nil {
		return nil, apperror.NotFound("Session not found")
	}
	if !session.Party(actingUserID) {
		return nil, apperror.Forbidden("Only the mentor or mentee of this session can modify it")
	}
	return session, nil
}

func (uc *sessionUsecase) apply(ctx context.Context, session *domain.Session, target string) (*domain.Session, error) {
	prev := session.Status
	session.Status = target
	session.UpdatedAt = uc.clock.Now()
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return nil, apperror.Internal(err)
	}

	uc.emit(session.ID, prev, target)
	return session, nil
}

func (uc *sessionUsecase) emit(id, prev, next string) {
	if uc.sink == nil {
		return
	}
	uc.sink.Emit(domain.LifecycleEvent{
		EntityKind:     domain.EntitySession,
		EntityID:       id,
		PreviousStatus: prev,
		NewStatus:      next,
		Timestamp:      uc.clock.Now(),
	})
}
