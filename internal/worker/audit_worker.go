package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/notes-service/internal/events"
)

// StartAuditWorker subscribes an audit logger to every domain event.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}

	handler := func(_ context.Context, event events.Event) error {
		fields := []zap.Field{
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Uint64("user_id", event.UserID),
			zap.Time("timestamp", event.Timestamp),
		}
		if event.NoteID != 0 {
			fields = append(fields, zap.Uint64("note_id", event.NoteID))
		}
		logger.Info("audit event", fields...)
		return nil
	}

	for _, eventType := range []events.EventType{
		events.EventUserRegistered,
		events.EventUserLoggedIn,
		events.EventUserLoggedOut,
		events.EventNoteCreated,
		events.EventNoteUpdated,
		events.EventNoteDeleted,
	} {
		dispatcher.Subscribe(eventType, handler)
	}
}
