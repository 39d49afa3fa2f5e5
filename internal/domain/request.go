package domain

import (
	"context"
	"time"
)

// MentorshipRequest statuses. A request is terminal once it leaves pending.
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusDeclined = "declined"
	RequestStatusExpired  = "expired"
)

// Session type tags a requester can pick when submitting a request.
var SessionTypes = []string{
	"career-advice",
	"technical-review",
	"skill-development",
	"interview-prep",
	"project-guidance",
	"other",
}

// TimeSlots is the closed set of bookable start times.
var TimeSlots = []string{
	"09:00", "10:00", "11:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// ValidSessionType reports whether t is a known session type tag.
func ValidSessionType(t string) bool {
	for _, st := range SessionTypes {
		if st == t {
			return true
		}
	}
	return false
}

// ValidTimeSlot reports whether s is a known time slot.
func ValidTimeSlot(s string) bool {
	for _, slot := range TimeSlots {
		if slot == s {
			return true
		}
	}
	return false
}

// MentorshipRequest is a mentee's request for a mentorship session.
// Only the target mentor (or the expiry rule) may move it out of pending.
type MentorshipRequest struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	MentorID    string    `json:"mentor_id"`
	Subject     string    `json:"subject"`
	SessionType string    `json:"session_type"`
	Message     string    `json:"message"`
	Date        string    `json:"date"`
	TimeSlot    string    `json:"time_slot"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Terminal reports whether the request has left pending for good.
func (r *MentorshipRequest) Terminal() bool {
	return r.Status != RequestStatusPending
}

// SubmitRequestInput is the payload for creating a mentorship request.
type SubmitRequestInput struct {
	MentorID    string `json:"mentor_id" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	SessionType string `json:"session_type" binding:"required"`
	Message     string `json:"message" binding:"required"`
	Date        string `json:"date" binding:"required"`
	TimeSlot    string `json:"time_slot" binding:"required"`
}

// RequestRepository defines data access for mentorship requests.
type RequestRepository interface {
	Create(ctx context.Context, req *MentorshipRequest) error
	GetByID(ctx context.Context, id string) (*MentorshipRequest, error)
	ListByMentor(ctx context.Context, mentorID string) ([]MentorshipRequest, error)
	ListByRequester(ctx context.Context, requesterID string) ([]MentorshipRequest, error)
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]MentorshipRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// RequestUsecase is the mentorship request lifecycle.
// Acting user identity is always passed explicitly, never taken from
// ambient state.
type RequestUsecase interface {
	Submit(ctx context.Context, requesterID string, in SubmitRequestInput) (*MentorshipRequest, error)
	Accept(ctx context.Context, requestID, actingUserID string) (*MentorshipRequest, error)
	Decline(ctx context.Context, requestID, actingUserID string) (*MentorshipRequest, error)
	Expire(ctx context.Context, requestID string) error
	ExpireStale(ctx context.Context, now time.Time) (int, error)
	ListInbox(ctx context.Context, mentorID string) ([]MentorshipRequest, error)
	ListOutbox(ctx context.Context, requesterID string) ([]MentorshipRequest, error)
}
