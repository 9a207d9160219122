package dto

// ── note module DTOs ──

// CreateNoteRequest is the note creation payload.
type CreateNoteRequest struct {
	Title   string `json:"title"   binding:"required,min=1,max=200"`
	Content string `json:"content"`
}

// UpdateNoteRequest is the partial note update payload.
type UpdateNoteRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content *string `json:"content"`
}

// NoteResponse is the note view.
type NoteResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
