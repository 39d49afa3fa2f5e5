package notify

import (
	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/pkg/logger"
)

// LogSink writes lifecycle events to the structured log. Always registered;
// in deployments without Redis it is the only sink.
type LogSink struct{}

func NewLogSink() *LogSink { return &LogSink{} }

func (s *LogSink) Emit(event domain.LifecycleEvent) {
	logger.Log.Info("lifecycle transition",
		"entity_kind", event.EntityKind,
		"entity_id", event.EntityID,
		"previous_status", event.PreviousStatus,
		"new_status", event.NewStatus,
		"at", event.Timestamp,
	)
}

// MultiSink fans one event out to every registered sink.
type MultiSink struct {
	sinks []domain.NotificationSink
}

func NewMultiSink(sinks ...domain.NotificationSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) Emit(event domain.LifecycleEvent) {
	for _, s := range m.sinks {
		s.Emit(event)
	}
}
