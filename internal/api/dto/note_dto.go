package dto

// CreateNoteRequest payload for a new note.
type CreateNoteRequest struct {
	Title   string  `json:"title"`
	Content *string `json:"content"`
}

// UpdateNoteRequest payload for a partial note update. Absent fields are
// left unchanged.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
