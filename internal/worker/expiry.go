package worker

import (
	"context"
	"time"

	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/pkg/logger"
)

// ExpiryWorker periodically expires pending mentorship requests whose
// inactivity window has elapsed. It is the clock collaborator that drives
// the expire rule; the lifecycle itself never watches the time.
type ExpiryWorker struct {
	requests domain.RequestUsecase
	clock    domain.Clock
	interval time.Duration
}

func NewExpiryWorker(requests domain.RequestUsecase, clock domain.Clock, interval time.Duration) *ExpiryWorker {
	return &ExpiryWorker{
		requests: requests,
		clock:    clock,
		interval: interval,
	}
}

// Run sweeps until ctx is cancelled. Call in its own goroutine.
func (w *ExpiryWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) {
	expired, err := w.requests.ExpireStale(ctx, w.clock.Now())
	if err != nil {
		logger.Log.Error("Expiry sweep failed", "error", err)
		return
	}
	if expired > 0 {
		logger.Log.Info("Expired stale mentorship requests", "count", expired)
	}
}
