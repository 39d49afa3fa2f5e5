package usecase_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/internal/repository/memory"
	"go-mentorship-backend/internal/usecase"
	"go-mentorship-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

// recordingSink captures lifecycle events for assertions. Safe for
// concurrent emitters.
type recordingSink struct {
	mu     sync.Mutex
	events []domain.LifecycleEvent
}

func (s *recordingSink) Emit(e domain.LifecycleEvent) {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
}

func (s *recordingSink) Events() []domain.LifecycleEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.LifecycleEvent(nil), s.events...)
}

// stubClock is a settable clock so tests control request timestamps.
type stubClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stubClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

var testNow = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

const (
	mentorID = "mentor-1"
	menteeID = "mentee-1"
)

func mentorProfile() domain.Profile {
	return domain.Profile{
		ID: "p-mentor", UserID: mentorID, FirstName: "Sarah", LastName: "Chen",
		Role: domain.RoleMentor, Department: "Computer Science",
		Skills: []string{"React", "Python"},
	}
}

func menteeProfile() domain.Profile {
	return domain.Profile{
		ID: "p-mentee", UserID: menteeID, FirstName: "Alex", LastName: "Kim",
		Role: domain.RoleMentee, Department: "Computer Science",
	}
}

func validSubmitInput() domain.SubmitRequestInput {
	return domain.SubmitRequestInput{
		MentorID:    mentorID,
		Subject:     "Preparing for system design interviews",
		SessionType: "interview-prep",
		Message:     "Could you help me structure my preparation?",
		Date:        "2026-09-10",
		TimeSlot:    "14:00",
	}
}

type requestFixture struct {
	uc       domain.RequestUsecase
	sessions domain.SessionRepository
	sink     *recordingSink
	clock    *stubClock
}

func newRequestFixture() *requestFixture {
	profiles := memory.NewProfileRepository()
	profiles.Seed(mentorProfile(), menteeProfile())

	sessions := memory.NewSessionRepository()
	sink := &recordingSink{}
	clock := &stubClock{now: testNow}

	uc := usecase.NewRequestUsecase(
		memory.NewRequestRepository(), profiles, sessions, sink, clock, 168*time.Hour)
	return &requestFixture{uc: uc, sessions: sessions, sink: sink, clock: clock}
}

func assertAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	assert.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	if assert.True(t, ok, "expected *apperror.AppError, got %T", err) {
		assert.Equal(t, code, appErr.Code)
	}
	return appErr
}

func TestSubmitRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Success creates a pending request", func(t *testing.T) {
		f := newRequestFixture()

		req, err := f.uc.Submit(ctx, menteeID, validSubmitInput())

		assert.NoError(t, err)
		assert.NotEmpty(t, req.ID)
		assert.Equal(t, domain.RequestStatusPending, req.Status)
		assert.Equal(t, menteeID, req.RequesterID)
		assert.Equal(t, mentorID, req.MentorID)
		assert.Equal(t, testNow, req.CreatedAt)

		events := f.sink.Events()
		if assert.Len(t, events, 1) {
			assert.Equal(t, domain.EntityRequest, events[0].EntityKind)
			assert.Equal(t, "", events[0].PreviousStatus)
			assert.Equal(t, domain.RequestStatusPending, events[0].NewStatus)
		}
	})

	t.Run("Submitting to yourself is a validation error naming the field", func(t *testing.T) {
		f := newRequestFixture()
		in := validSubmitInput()
		in.MentorID = menteeID

		_, err := f.uc.Submit(ctx, menteeID, in)

		appErr := assertAppError(t, err, http.StatusBadRequest)
		assert.Contains(t, appErr.Message, "Mentor")
		assert.Empty(t, f.sink.Events())
	})

	t.Run("Missing fields are rejected with the field name", func(t *testing.T) {
		f := newRequestFixture()

		cases := []struct {
			name   string
			mutate func(*domain.SubmitRequestInput)
			field  string
		}{
			{"missing mentor", func(in *domain.SubmitRequestInput) { in.MentorID = "" }, "Mentor"},
			{"missing subject", func(in *domain.SubmitRequestInput) { in.Subject = "" }, "Subject"},
			{"missing message", func(in *domain.SubmitRequestInput) { in.Message = "" }, "Message"},
			{"unknown session type", func(in *domain.SubmitRequestInput) { in.SessionType = "pair-programming" }, "Session Type"},
			{"missing date", func(in *domain.SubmitRequestInput) { in.Date = "" }, "Preferred Date"},
			{"unbookable slot", func(in *domain.SubmitRequestInput) { in.TimeSlot = "13:00" }, "Preferred Time"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				in := validSubmitInput()
				tc.mutate(&in)
				_, err := f.uc.Submit(ctx, menteeID, in)
				appErr := assertAppError(t, err, http.StatusBadRequest)
				assert.Contains(t, appErr.Message, tc.field)
			})
		}
	})

	t.Run("Unknown mentor is not found", func(t *testing.T) {
		f := newRequestFixture()
		in := validSubmitInput()
		in.MentorID = "nobody"

		_, err := f.uc.Submit(ctx, menteeID, in)
		assertAppError(t, err, http.StatusNotFound)
	})

	t.Run("Target must hold the mentor role", func(t *testing.T) {
		f := newRequestFixture()
		in := validSubmitInput()
		in.MentorID = menteeID

		_, err := f.uc.Submit(ctx, "someone-else", in)
		assertAppError(t, err, http.StatusBadRequest)
	})
}

func TestRespondToRequest(t *testing.T) {
	ctx := context.Background()

	submit := func(t *testing.T, f *requestFixture) *domain.MentorshipRequest {
		t.Helper()
		req, err := f.uc.Submit(ctx, menteeID, validSubmitInput())
		assert.NoError(t, err)
		return req
	}

	t.Run("Accept moves pending to accepted and derives the session", func(t *testing.T) {
		f := newRequestFixture()
		req := submit(t, f)

		accepted, err := f.uc.Accept(ctx, req.ID, mentorID)
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestStatusAccepted, accepted.Status)

		session, err := f.sessions.GetByRequestID(ctx, req.ID)
		assert.NoError(t, err)
		if assert.NotNil(t, session) {
			assert.Equal(t, domain.SessionStatusPending, session.Status)
			assert.Equal(t, mentorID, session.MentorID)
			assert.Equal(t, menteeID, session.MenteeID)
			assert.Equal(t, req.Date, session.Date)
			assert.Equal(t, req.TimeSlot, session.TimeSlot)
			assert.Equal(t, req.Subject, session.Topic)
		}
	})

	t.Run("Decline moves pending to declined without a session", func(t *testing.T) {
		f := newRequestFixture()
		req := submit(t, f)

		declined, err := f.uc.Decline(ctx, req.ID, mentorID)
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestStatusDeclined, declined.Status)

		session, err := f.sessions.GetByRequestID(ctx, req.ID)
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Only the requested mentor may respond", func(t *testing.T) {
		f := newRequestFixture()
		req := submit(t, f)

		_, err := f.uc.Accept(ctx, req.ID, menteeID)
		assertAppError(t, err, http.StatusForbidden)

		_, err = f.uc.Decline(ctx, req.ID, "another-mentor")
		assertAppError(t, err, http.StatusForbidden)
	})

	t.Run("A terminal request rejects further transitions", func(t *testing.T) {
		f := newRequestFixture()
		req := submit(t, f)

		_, err := f.uc.Decline(ctx, req.ID, mentorID)
		assert.NoError(t, err)

		_, err = f.uc.Accept(ctx, req.ID, mentorID)
		appErr := assertAppError(t, err, http.StatusConflict)
		assert.Contains(t, appErr.Message, req.ID)
		assert.Contains(t, appErr.Message, domain.RequestStatusDeclined)
	})

	t.Run("Responding to an unknown request is not found", func(t *testing.T) {
		f := newRequestFixture()
		_, err := f.uc.Accept(ctx, "missing", mentorID)
		assertAppError(t, err, http.StatusNotFound)
	})

	t.Run("Racing accept and decline resolve to exactly one winner", func(t *testing.T) {
		f := newRequestFixture()
		req := submit(t, f)

		var wg sync.WaitGroup
		results := make([]error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, results[0] = f.uc.Accept(ctx, req.ID, mentorID)
		}()
		go func() {
			defer wg.Done()
			_, results[1] = f.uc.Decline(ctx, req.ID, mentorID)
		}()
		wg.Wait()

		var successes, conflicts int
		for _, err := range results {
			if err == nil {
				successes++
				continue
			}
			appErr, ok := err.(*apperror.AppError)
			if assert.True(t, ok) {
				assert.Equal(t, http.StatusConflict, appErr.Code)
				conflicts++
			}
		}
		assert.Equal(t, 1, successes)
		assert.Equal(t, 1, conflicts)

		// A session exists only when accept was the winner
		session, err := f.sessions.GetByRequestID(ctx, req.ID)
		assert.NoError(t, err)
		if results[0] == nil {
			assert.NotNil(t, session)
		} else {
			assert.Nil(t, session)
		}
	})
}

func TestExpireRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Expire is idempotent on terminal requests", func(t *testing.T) {
		f := newRequestFixture()
		req, err := f.uc.Submit(ctx, menteeID, validSubmitInput())
		assert.NoError(t, err)

		assert.NoError(t, f.uc.Expire(ctx, req.ID))
		assert.NoError(t, f.uc.Expire(ctx, req.ID))

		inbox, err := f.uc.ListInbox(ctx, mentorID)
		assert.NoError(t, err)
		if assert.Len(t, inbox, 1) {
			assert.Equal(t, domain.RequestStatusExpired, inbox[0].Status)
		}
	})

	t.Run("Expiring an unknown request is not found", func(t *testing.T) {
		f := newRequestFixture()
		err := f.uc.Expire(ctx, "missing")
		assertAppError(t, err, http.StatusNotFound)
	})

	t.Run("ExpireStale only touches pending requests past the window", func(t *testing.T) {
		f := newRequestFixture()

		// One request well past the inactivity window, one fresh
		f.clock.Set(testNow.Add(-200 * time.Hour))
		stale, err := f.uc.Submit(ctx, menteeID, validSubmitInput())
		assert.NoError(t, err)

		f.clock.Set(testNow)
		fresh, err := f.uc.Submit(ctx, menteeID, validSubmitInput())
		assert.NoError(t, err)

		count, err := f.uc.ExpireStale(ctx, testNow)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)

		inbox, err := f.uc.ListInbox(ctx, mentorID)
		assert.NoError(t, err)
		byID := make(map[string]string, len(inbox))
		for _, r := range inbox {
			byID[r.ID] = r.Status
		}
		assert.Equal(t, domain.RequestStatusExpired, byID[stale.ID])
		assert.Equal(t, domain.RequestStatusPending, byID[fresh.ID])
	})

	t.Run("ExpireStale skips accepted requests regardless of age", func(t *testing.T) {
		f := newRequestFixture()

		f.clock.Set(testNow.Add(-200 * time.Hour))
		req, err := f.uc.Submit(ctx, menteeID, validSubmitInput())
		assert.NoError(t, err)
		_, err = f.uc.Accept(ctx, req.ID, mentorID)
		assert.NoError(t, err)

		count, err := f.uc.ExpireStale(ctx, testNow)
		assert.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestRequestLifecycleEvents(t *testing.T) {
	ctx := context.Background()
	f := newRequestFixture()

	req, err := f.uc.Submit(ctx, menteeID, validSubmitInput())
	assert.NoError(t, err)
	_, err = f.uc.Accept(ctx, req.ID, mentorID)
	assert.NoError(t, err)

	// Creation, session derivation, then the accept transition
	events := f.sink.Events()
	if assert.Len(t, events, 3) {
		assert.Equal(t, domain.RequestStatusPending, events[0].NewStatus)
		assert.Equal(t, domain.EntitySession, events[1].EntityKind)
		assert.Equal(t, domain.RequestStatusPending, events[2].PreviousStatus)
		assert.Equal(t, domain.RequestStatusAccepted, events[2].NewStatus)
	}
}
