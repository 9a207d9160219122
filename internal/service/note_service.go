package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"uni-portal/backend/internal/dto"
	"uni-portal/backend/internal/model"
	"uni-portal/backend/internal/repository"
)

// ── note module errors ──

var ErrNoteNotFound = errors.New("note not found")

// NoteService owns private per-user notes. Every operation is scoped to
// the calling user; a note belonging to someone else reads as not found.
type NoteService interface {
	Create(ctx context.Context, ownerID string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	GetByID(ctx context.Context, ownerID, id string) (*dto.NoteResponse, error)
	List(ctx context.Context, ownerID string) ([]dto.NoteResponse, error)
	Update(ctx context.Context, ownerID, id string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type noteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNoteService creates a NoteService.
func NewNoteService(repo *repository.Repository, logger *zap.Logger) NoteService {
	return &noteService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *noteService) Create(ctx context.Context, ownerID string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	note := &model.Note{
		OwnerID: ownerID,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := s.repo.Note.Create(ctx, note); err != nil {
		s.logger.Error("create note failed", zap.Error(err))
		return nil, err
	}

	return toNoteResponse(note), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *noteService) GetByID(ctx context.Context, ownerID, id string) (*dto.NoteResponse, error) {
	note, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

// ────────────────────── List ──────────────────────

func (s *noteService) List(ctx context.Context, ownerID string) ([]dto.NoteResponse, error) {
	notes, err := s.repo.Note.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("list notes failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.NoteResponse, 0, len(notes))
	for i := range notes {
		result = append(result, *toNoteResponse(&notes[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *noteService) Update(ctx context.Context, ownerID, id string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	note, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}

	if err := s.repo.Note.Update(ctx, note); err != nil {
		s.logger.Error("update note failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toNoteResponse(note), nil
}

// ────────────────────── Delete ──────────────────────

func (s *noteService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.getOwned(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.repo.Note.Delete(ctx, id); err != nil {
		s.logger.Error("delete note failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── helpers ──

func (s *noteService) getOwned(ctx context.Context, ownerID, id string) (*model.Note, error) {
	note, err := s.repo.Note.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		s.logger.Error("get note failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if note.OwnerID != ownerID {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

func toNoteResponse(note *model.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		ID:        note.NoteID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}
}
