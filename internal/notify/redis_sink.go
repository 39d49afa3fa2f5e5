package notify

import (
	"context"
	"encoding/json"
	"time"

	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Channel lifecycle events are published on. Frontend gateways subscribe
// here to turn transitions into user-facing toasts.
const EventChannel = "mentorship:lifecycle"

// RedisSink publishes lifecycle events to a Redis pub/sub channel.
// Fire-and-forget: publish failures are logged, never propagated, because
// the core does not consume any return value from the sink.
type RedisSink struct {
	client *redis.Client
}

func NewRedisSink(client *redis.Client) *RedisSink {
	return &RedisSink{client: client}
}

func (s *RedisSink) Emit(event domain.LifecycleEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Error("Failed to encode lifecycle event", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.client.Publish(ctx, EventChannel, payload).Err(); err != nil {
		logger.Log.Error("Failed to publish lifecycle event",
			"entity_id", event.EntityID, "error", err)
	}
}
