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

// ── announcement module errors ──

var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementService owns portal-wide announcements.
type AnnouncementService interface {
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AnnouncementResponse, error)
	List(ctx context.Context) ([]dto.AnnouncementResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
}

type announcementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAnnouncementService creates an AnnouncementService.
func NewAnnouncementService(repo *repository.Repository, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *announcementService) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	a := &model.Announcement{
		Title:  req.Title,
		Body:   req.Body,
		Pinned: req.Pinned,
	}

	if err := s.repo.Announcement.Create(ctx, a); err != nil {
		s.logger.Error("create announcement failed", zap.Error(err))
		return nil, err
	}

	return toAnnouncementResponse(a), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *announcementService) GetByID(ctx context.Context, id string) (*dto.AnnouncementResponse, error) {
	a, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		s.logger.Error("get announcement failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toAnnouncementResponse(a), nil
}

// ────────────────────── List ──────────────────────

func (s *announcementService) List(ctx context.Context) ([]dto.AnnouncementResponse, error) {
	as, err := s.repo.Announcement.List(ctx)
	if err != nil {
		s.logger.Error("list announcements failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AnnouncementResponse, 0, len(as))
	for i := range as {
		result = append(result, *toAnnouncementResponse(&as[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *announcementService) Update(ctx context.Context, id string, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	a, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		s.logger.Error("get announcement failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Body != nil {
		a.Body = *req.Body
	}
	if req.Pinned != nil {
		a.Pinned = *req.Pinned
	}

	if err := s.repo.Announcement.Update(ctx, a); err != nil {
		s.logger.Error("update announcement failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toAnnouncementResponse(a), nil
}

// ────────────────────── Delete ──────────────────────

func (s *announcementService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Announcement.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnnouncementNotFound
		}
		s.logger.Error("get announcement failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Announcement.Delete(ctx, id); err != nil {
		s.logger.Error("delete announcement failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── helpers ──

func toAnnouncementResponse(a *model.Announcement) *dto.AnnouncementResponse {
	return &dto.AnnouncementResponse{
		ID:        a.AnnouncementID,
		Title:     a.Title,
		Body:      a.Body,
		Pinned:    a.Pinned,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}
