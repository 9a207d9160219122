package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uni-portal/backend/internal/dto"
	"uni-portal/backend/internal/service"
	"uni-portal/backend/pkg/response"
)

// NoteHandler handles private note endpoints. All routes are scoped to
// the calling user.
type NoteHandler struct {
	noteSvc service.NoteService
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(noteSvc service.NoteService) *NoteHandler {
	return &NoteHandler{noteSvc: noteSvc}
}

// ListNotes lists the calling user's notes.
// GET /api/v1/notes
func (h *NoteHandler) ListNotes(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	notes, err := h.noteSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": notes})
}

// GetNote returns one of the calling user's notes.
// GET /api/v1/notes/:id
func (h *NoteHandler) GetNote(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "note id required")
		return
	}

	note, err := h.noteSvc.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.handleNoteError(c, err)
		return
	}

	response.OK(c, note)
}

// CreateNote creates a note for the calling user.
// POST /api/v1/notes
func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	note, err := h.noteSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleNoteError(c, err)
		return
	}

	response.Created(c, note)
}

// UpdateNote updates one of the calling user's notes.
// PUT /api/v1/notes/:id
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "note id required")
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	note, err := h.noteSvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleNoteError(c, err)
		return
	}

	response.OK(c, note)
}

// DeleteNote deletes one of the calling user's notes.
// DELETE /api/v1/notes/:id
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "note id required")
		return
	}

	if err := h.noteSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleNoteError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *NoteHandler) handleNoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoteNotFound):
		response.NotFound(c, 17001, "note not found")
	default:
		response.InternalError(c)
	}
}
