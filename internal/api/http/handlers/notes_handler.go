package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/notes-service/internal/api/dto"
	"github.com/spec-kit/notes-service/internal/auth"
	"github.com/spec-kit/notes-service/internal/service"
	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

// NotesHandler exposes CRUD endpoints over the caller's own notes.
type NotesHandler struct {
	notes *service.NoteService
}

// NewNotesHandler constructs handler.
func NewNotesHandler(noteService *service.NoteService) *NotesHandler {
	return &NotesHandler{notes: noteService}
}

// Create handles POST /notes.
func (h *NotesHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}

	var req dto.CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Title == "" {
		return apperrors.NewValidationError("title is required")
	}

	note, err := h.notes.Create(c.UserContext(), claims.Subject, req.Title, req.Content)
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "note created", note)
}

// List handles GET /notes.
func (h *NotesHandler) List(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}

	notes, err := h.notes.List(c.UserContext(), claims.Subject)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "notes retrieved", notes)
}

// Get handles GET /notes/:id.
func (h *NotesHandler) Get(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}
	id, err := noteID(c)
	if err != nil {
		return err
	}

	note, err := h.notes.Get(c.UserContext(), id, claims.Subject)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "note retrieved", note)
}

// Update handles PUT /notes/:id.
func (h *NotesHandler) Update(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}
	id, err := noteID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	note, err := h.notes.Update(c.UserContext(), id, claims.Subject, req.Title, req.Content)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "note updated", note)
}

// Delete handles DELETE /notes/:id.
func (h *NotesHandler) Delete(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}
	id, err := noteID(c)
	if err != nil {
		return err
	}

	if err := h.notes.Delete(c.UserContext(), id, claims.Subject); err != nil {
		return err
	}
	return success(c, http.StatusOK, "note deleted", nil)
}

func noteID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("invalid note id")
	}
	return id, nil
}
