package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserLoggedIn   EventType = "user_logged_in"
	EventUserLoggedOut  EventType = "user_logged_out"
	EventNoteCreated    EventType = "note_created"
	EventNoteUpdated    EventType = "note_updated"
	EventNoteDeleted    EventType = "note_deleted"
)

// Event represents a domain event emitted by services. NoteID is zero for
// account events.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	UserID    uint64    `json:"user_id"`
	NoteID    uint64    `json:"note_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// New stamps a fresh event with an ID and timestamp.
func New(eventType EventType, userID, noteID uint64) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		NoteID:    noteID,
		Timestamp: time.Now(),
	}
}
