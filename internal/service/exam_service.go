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

// ── exam module errors ──

var (
	ErrExamNotFound    = errors.New("exam not found")
	ErrExamDateInvalid = errors.New("exam date must be in YYYY-MM-DD format")
)

// ExamService owns the exam calendar.
type ExamService interface {
	Create(ctx context.Context, req *dto.CreateExamRequest) (*dto.ExamResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ExamResponse, error)
	List(ctx context.Context) ([]dto.ExamResponse, error)
	// ListUpcoming returns exams from today onward, soonest first.
	ListUpcoming(ctx context.Context) ([]dto.ExamResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateExamRequest) (*dto.ExamResponse, error)
	Delete(ctx context.Context, id string) error
}

type examService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExamService creates an ExamService with an injected clock.
func NewExamService(repo *repository.Repository, logger *zap.Logger, now func() time.Time) ExamService {
	if now == nil {
		now = time.Now
	}
	return &examService{repo: repo, logger: logger, now: now}
}

// ────────────────────── Create ──────────────────────

func (s *examService) Create(ctx context.Context, req *dto.CreateExamRequest) (*dto.ExamResponse, error) {
	date, err := time.Parse(weekDateFormat, req.Date)
	if err != nil {
		return nil, ErrExamDateInvalid
	}

	exam := &model.Exam{
		Subject:   req.Subject,
		ExamType:  req.ExamType,
		Date:      date,
		StartTime: req.StartTime,
		Room:      req.Room,
		Teacher:   req.Teacher,
		Notes:     req.Notes,
	}

	if err := s.repo.Exam.Create(ctx, exam); err != nil {
		s.logger.Error("create exam failed", zap.Error(err))
		return nil, err
	}

	return toExamResponse(exam), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *examService) GetByID(ctx context.Context, id string) (*dto.ExamResponse, error) {
	exam, err := s.repo.Exam.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		s.logger.Error("get exam failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toExamResponse(exam), nil
}

// ────────────────────── List ──────────────────────

func (s *examService) List(ctx context.Context) ([]dto.ExamResponse, error) {
	exams, err := s.repo.Exam.List(ctx)
	if err != nil {
		s.logger.Error("list exams failed", zap.Error(err))
		return nil, err
	}
	return toExamResponses(exams), nil
}

// ────────────────────── ListUpcoming ──────────────────────

func (s *examService) ListUpcoming(ctx context.Context) ([]dto.ExamResponse, error) {
	exams, err := s.repo.Exam.ListUpcoming(ctx, s.now())
	if err != nil {
		s.logger.Error("list upcoming exams failed", zap.Error(err))
		return nil, err
	}
	return toExamResponses(exams), nil
}

// ────────────────────── Update ──────────────────────

func (s *examService) Update(ctx context.Context, id string, req *dto.UpdateExamRequest) (*dto.ExamResponse, error) {
	exam, err := s.repo.Exam.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		s.logger.Error("get exam failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Subject != nil {
		exam.Subject = *req.Subject
	}
	if req.ExamType != nil {
		exam.ExamType = *req.ExamType
	}
	if req.Date != nil {
		date, err := time.Parse(weekDateFormat, *req.Date)
		if err != nil {
			return nil, ErrExamDateInvalid
		}
		exam.Date = date
	}
	if req.StartTime != nil {
		exam.StartTime = *req.StartTime
	}
	if req.Room != nil {
		exam.Room = *req.Room
	}
	if req.Teacher != nil {
		exam.Teacher = *req.Teacher
	}
	if req.Notes != nil {
		exam.Notes = *req.Notes
	}

	if err := s.repo.Exam.Update(ctx, exam); err != nil {
		s.logger.Error("update exam failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toExamResponse(exam), nil
}

// ────────────────────── Delete ──────────────────────

func (s *examService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Exam.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExamNotFound
		}
		s.logger.Error("get exam failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Exam.Delete(ctx, id); err != nil {
		s.logger.Error("delete exam failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── helpers ──

func toExamResponse(exam *model.Exam) *dto.ExamResponse {
	return &dto.ExamResponse{
		ID:        exam.ExamID,
		Subject:   exam.Subject,
		ExamType:  exam.ExamType,
		Date:      exam.Date.Format(weekDateFormat),
		StartTime: exam.StartTime,
		Room:      exam.Room,
		Teacher:   exam.Teacher,
		Notes:     exam.Notes,
		CreatedAt: exam.CreatedAt.Format(time.RFC3339),
		UpdatedAt: exam.UpdatedAt.Format(time.RFC3339),
	}
}

func toExamResponses(exams []model.Exam) []dto.ExamResponse {
	result := make([]dto.ExamResponse, 0, len(exams))
	for i := range exams {
		result = append(result, *toExamResponse(&exams[i]))
	}
	return result
}
