package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/notes-service/internal/domain"
	"github.com/spec-kit/notes-service/internal/events"
	"github.com/spec-kit/notes-service/internal/repository"
	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

// NoteService implements owner-scoped CRUD over notes. A note belonging to
// another user is indistinguishable from a missing one.
type NoteService struct {
	notes      repository.NoteRepository
	dispatcher events.Dispatcher
}

// NewNoteService builds the service.
func NewNoteService(notes repository.NoteRepository, dispatcher events.Dispatcher) *NoteService {
	return &NoteService{notes: notes, dispatcher: dispatcher}
}

// Create stores a new note owned by userID.
func (s *NoteService) Create(ctx context.Context, userID uint64, title string, content *string) (*domain.Note, error) {
	note := &domain.Note{
		UserID:  userID,
		Title:   title,
		Content: content,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.New(events.EventNoteCreated, userID, note.ID))
	return note, nil
}

// List returns all notes owned by userID, newest first.
func (s *NoteService) List(ctx context.Context, userID uint64) ([]domain.Note, error) {
	notes, err := s.notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return notes, nil
}

// Get returns a single note owned by userID.
func (s *NoteService) Get(ctx context.Context, id, userID uint64) (*domain.Note, error) {
	note, err := s.notes.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("note not found")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return note, nil
}

// Update applies a partial update: only provided fields change.
func (s *NoteService) Update(ctx context.Context, id, userID uint64, title, content *string) (*domain.Note, error) {
	note, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		note.Title = *title
	}
	if content != nil {
		note.Content = content
	}

	if err := s.notes.Update(ctx, note); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("note not found")
		}
		return nil, apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.New(events.EventNoteUpdated, userID, note.ID))
	return note, nil
}

// Delete removes a note owned by userID.
func (s *NoteService) Delete(ctx context.Context, id, userID uint64) error {
	if err := s.notes.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("note not found")
		}
		return apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.New(events.EventNoteDeleted, userID, id))
	return nil
}
