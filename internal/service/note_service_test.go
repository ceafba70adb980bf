package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/notes-service/internal/domain"
	"github.com/spec-kit/notes-service/internal/events"
)

type fakeNoteRepo struct {
	notes  map[uint64]*domain.Note
	nextID uint64
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[uint64]*domain.Note)}
}

func (f *fakeNoteRepo) Create(_ context.Context, note *domain.Note) error {
	f.nextID++
	note.ID = f.nextID
	note.CreatedAt = time.Now()
	clone := *note
	f.notes[note.ID] = &clone
	return nil
}

func (f *fakeNoteRepo) ListByUser(_ context.Context, userID uint64) ([]domain.Note, error) {
	notes := make([]domain.Note, 0)
	for _, note := range f.notes {
		if note.UserID == userID {
			notes = append(notes, *note)
		}
	}
	return notes, nil
}

func (f *fakeNoteRepo) GetByID(_ context.Context, id, userID uint64) (*domain.Note, error) {
	note, ok := f.notes[id]
	if !ok || note.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	clone := *note
	return &clone, nil
}

func (f *fakeNoteRepo) Update(_ context.Context, note *domain.Note) error {
	existing, ok := f.notes[note.ID]
	if !ok || existing.UserID != note.UserID {
		return pgx.ErrNoRows
	}
	clone := *note
	f.notes[note.ID] = &clone
	return nil
}

func (f *fakeNoteRepo) Delete(_ context.Context, id, userID uint64) error {
	note, ok := f.notes[id]
	if !ok || note.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(f.notes, id)
	return nil
}

func newNoteService(repo *fakeNoteRepo) *NoteService {
	return NewNoteService(repo, events.NewInMemoryDispatcher())
}

func strptr(s string) *string { return &s }

func TestNoteCreateAndGet(t *testing.T) {
	svc := newNoteService(newFakeNoteRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "groceries", strptr("milk, eggs"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := svc.Get(ctx, created.ID, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "groceries" || got.Content == nil || *got.Content != "milk, eggs" {
		t.Fatalf("unexpected note: %+v", got)
	}
}

func TestNoteOwnerScoping(t *testing.T) {
	svc := newNoteService(newFakeNoteRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "private", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Get(ctx, created.ID, 2); errorCode(t, err) != "NOT_FOUND" {
		t.Fatal("another user's read should look like a missing note")
	}
	if _, err := svc.Update(ctx, created.ID, 2, strptr("stolen"), nil); errorCode(t, err) != "NOT_FOUND" {
		t.Fatal("another user's update should look like a missing note")
	}
	if err := svc.Delete(ctx, created.ID, 2); errorCode(t, err) != "NOT_FOUND" {
		t.Fatal("another user's delete should look like a missing note")
	}

	// The owner still sees it untouched.
	got, err := svc.Get(ctx, created.ID, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "private" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
}

func TestNoteUpdateIsPartial(t *testing.T) {
	svc := newNoteService(newFakeNoteRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "draft", strptr("original content"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, 1, strptr("final"), nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "final" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if updated.Content == nil || *updated.Content != "original content" {
		t.Fatal("content should be unchanged when omitted")
	}

	updated, err = svc.Update(ctx, created.ID, 1, nil, strptr("rewritten"))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "final" {
		t.Fatal("title should be unchanged when omitted")
	}
	if updated.Content == nil || *updated.Content != "rewritten" {
		t.Fatalf("content not updated: %+v", updated.Content)
	}
}

func TestNoteDeleteTwice(t *testing.T) {
	svc := newNoteService(newFakeNoteRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "temp", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, created.ID, 1); errorCode(t, err) != "NOT_FOUND" {
		t.Fatal("second delete should report NOT_FOUND")
	}
}

func TestNoteListScopedToUser(t *testing.T) {
	svc := newNoteService(newFakeNoteRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, 1, "mine", nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, 2, "theirs", nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	notes, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "mine" {
		t.Fatalf("unexpected listing: %+v", notes)
	}
}
