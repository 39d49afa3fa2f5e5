package domain

import (
	"context"
	"time"
)

// Session statuses. Completed and cancelled are terminal; confirmed can
// still move to completed or cancelled.
const (
	SessionStatusPending   = "pending"
	SessionStatusConfirmed = "confirmed"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// Session is a schedulable meeting derived from an accepted mentorship
// request. The request reference is historical: once the session exists its
// status evolves independently of the request.
type Session struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	MentorID  string    `json:"mentor_id"`
	MenteeID  string    `json:"mentee_id"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"time_slot"`
	Topic     string    `json:"topic"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Party reports whether userID is the mentor or the mentee of the session.
func (s *Session) Party(userID string) bool {
	return userID == s.MentorID || userID == s.MenteeID
}

// SessionRepository defines data access for sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	GetByRequestID(ctx context.Context, requestID string) (*Session, error)
	ListByUser(ctx context.Context, userID string) ([]Session, error)
	Update(ctx context.Context, session *Session) error
}

// SessionUsecase is the session scheduling lifecycle.
type SessionUsecase interface {
	Confirm(ctx context.Context, sessionID, actingUserID string) (*Session, error)
	Reschedule(ctx context.Context, sessionID, actingUserID, newDate, newSlot string) (*Session, error)
	Cancel(ctx context.Context, sessionID, actingUserID string) (*Session, error)
	Complete(ctx context.Context, sessionID, actingUserID string) (*Session, error)
	ListMine(ctx context.Context, userID string) ([]Session, error)
}
