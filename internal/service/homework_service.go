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

// ── homework module errors ──

var ErrHomeworkNotFound = errors.New("homework not found")

// HomeworkService owns homework CRUD. Listing defaults to the current
// week so the portal's landing view shows what is due now.
type HomeworkService interface {
	Create(ctx context.Context, req *dto.CreateHomeworkRequest) (*dto.HomeworkResponse, error)
	GetByID(ctx context.Context, id string) (*dto.HomeworkResponse, error)
	// List filters by week. An empty weekID means "the current week";
	// weekID "all" disables the filter.
	List(ctx context.Context, weekID string) ([]dto.HomeworkResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateHomeworkRequest) (*dto.HomeworkResponse, error)
	Delete(ctx context.Context, id string) error
}

type homeworkService struct {
	repo   *repository.Repository
	weeks  WeekService
	logger *zap.Logger
}

// NewHomeworkService creates a HomeworkService.
func NewHomeworkService(repo *repository.Repository, weeks WeekService, logger *zap.Logger) HomeworkService {
	return &homeworkService{repo: repo, weeks: weeks, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *homeworkService) Create(ctx context.Context, req *dto.CreateHomeworkRequest) (*dto.HomeworkResponse, error) {
	if req.WeekID != nil {
		if _, err := s.repo.Week.GetByID(ctx, *req.WeekID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrWeekNotFound
			}
			s.logger.Error("get week failed", zap.String("id", *req.WeekID), zap.Error(err))
			return nil, err
		}
	}

	hw := &model.Homework{
		WeekID:      req.WeekID,
		Subject:     req.Subject,
		Description: req.Description,
	}
	if req.DueDate != nil {
		due, err := time.Parse(weekDateFormat, *req.DueDate)
		if err != nil {
			return nil, ErrWeekDateInvalid
		}
		hw.DueDate = &due
	}

	if err := s.repo.Homework.Create(ctx, hw); err != nil {
		s.logger.Error("create homework failed", zap.Error(err))
		return nil, err
	}

	return toHomeworkResponse(hw), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *homeworkService) GetByID(ctx context.Context, id string) (*dto.HomeworkResponse, error) {
	hw, err := s.repo.Homework.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHomeworkNotFound
		}
		s.logger.Error("get homework failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toHomeworkResponse(hw), nil
}

// ────────────────────── List ──────────────────────

func (s *homeworkService) List(ctx context.Context, weekID string) ([]dto.HomeworkResponse, error) {
	switch weekID {
	case "all":
		weekID = ""
	case "":
		current, err := s.weeks.GetCurrent(ctx)
		if err != nil {
			if errors.Is(err, ErrNoCurrentWeek) {
				// no weeks at all: show everything instead of nothing
				break
			}
			return nil, err
		}
		weekID = current.ID
	}

	hws, err := s.repo.Homework.List(ctx, weekID)
	if err != nil {
		s.logger.Error("list homework failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.HomeworkResponse, 0, len(hws))
	for i := range hws {
		result = append(result, *toHomeworkResponse(&hws[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *homeworkService) Update(ctx context.Context, id string, req *dto.UpdateHomeworkRequest) (*dto.HomeworkResponse, error) {
	hw, err := s.repo.Homework.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHomeworkNotFound
		}
		s.logger.Error("get homework failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.WeekID != nil {
		if _, err := s.repo.Week.GetByID(ctx, *req.WeekID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrWeekNotFound
			}
			return nil, err
		}
		hw.WeekID = req.WeekID
	}
	if req.Subject != nil {
		hw.Subject = *req.Subject
	}
	if req.Description != nil {
		hw.Description = *req.Description
	}
	if req.DueDate != nil {
		due, err := time.Parse(weekDateFormat, *req.DueDate)
		if err != nil {
			return nil, ErrWeekDateInvalid
		}
		hw.DueDate = &due
	}
	if req.Done != nil {
		hw.Done = *req.Done
	}

	if err := s.repo.Homework.Update(ctx, hw); err != nil {
		s.logger.Error("update homework failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toHomeworkResponse(hw), nil
}

// ────────────────────── Delete ──────────────────────

func (s *homeworkService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Homework.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHomeworkNotFound
		}
		s.logger.Error("get homework failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Homework.Delete(ctx, id); err != nil {
		s.logger.Error("delete homework failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── helpers ──

func toHomeworkResponse(hw *model.Homework) *dto.HomeworkResponse {
	resp := &dto.HomeworkResponse{
		ID:          hw.HomeworkID,
		Subject:     hw.Subject,
		Description: hw.Description,
		Done:        hw.Done,
		CreatedAt:   hw.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   hw.UpdatedAt.Format(time.RFC3339),
	}
	if hw.WeekID != nil {
		resp.WeekID = *hw.WeekID
	}
	if hw.DueDate != nil {
		resp.DueDate = hw.DueDate.Format(weekDateFormat)
	}
	return resp
}
