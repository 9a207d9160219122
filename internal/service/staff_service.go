package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"uni-portal/backend/internal/dto"
	"uni-portal/backend/internal/model"
	"uni-portal/backend/internal/repository"
)

// ── staff module errors ──

var ErrStaffNotFound = errors.New("staff record not found")

// StaffService owns the teacher directory.
type StaffService interface {
	Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	GetByID(ctx context.Context, id string) (*dto.StaffResponse, error)
	List(ctx context.Context) ([]dto.StaffResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error)
	Delete(ctx context.Context, id string) error
}

type staffService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStaffService creates a StaffService.
func NewStaffService(repo *repository.Repository, logger *zap.Logger) StaffService {
	return &staffService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *staffService) Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	record := &model.Staff{
		Name:     req.Name,
		Position: req.Position,
		Subjects: req.Subjects,
		Email:    req.Email,
		Room:     req.Room,
	}

	if err := s.repo.Staff.Create(ctx, record); err != nil {
		s.logger.Error("create staff record failed", zap.Error(err))
		return nil, err
	}

	return toStaffResponse(record), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *staffService) GetByID(ctx context.Context, id string) (*dto.StaffResponse, error) {
	record, err := s.repo.Staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("get staff record failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toStaffResponse(record), nil
}

// ────────────────────── List ──────────────────────

func (s *staffService) List(ctx context.Context) ([]dto.StaffResponse, error) {
	records, err := s.repo.Staff.List(ctx)
	if err != nil {
		s.logger.Error("list staff failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StaffResponse, 0, len(records))
	for i := range records {
		result = append(result, *toStaffResponse(&records[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *staffService) Update(ctx context.Context, id string, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	record, err := s.repo.Staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("get staff record failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		record.Name = *req.Name
	}
	if req.Position != nil {
		record.Position = *req.Position
	}
	if req.Subjects != nil {
		record.Subjects = *req.Subjects
	}
	if req.Email != nil {
		record.Email = *req.Email
	}
	if req.Room != nil {
		record.Room = *req.Room
	}

	if err := s.repo.Staff.Update(ctx, record); err != nil {
		s.logger.Error("update staff record failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toStaffResponse(record), nil
}

// ────────────────────── Delete ──────────────────────

func (s *staffService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Staff.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStaffNotFound
		}
		s.logger.Error("get staff record failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Staff.Delete(ctx, id); err != nil {
		s.logger.Error("delete staff record failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── helpers ──

func toStaffResponse(record *model.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:       record.StaffID,
		Name:     record.Name,
		Position: record.Position,
		Subjects: record.Subjects,
		Email:    record.Email,
		Room:     record.Room,
	}
}
