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

// ── week module errors ──

var (
	ErrWeekNotFound    = errors.New("week not found")
	ErrWeekDateInvalid = errors.New("week start date must not be after end date")
	ErrNoCurrentWeek   = errors.New("no current or upcoming week")
)

const weekDateFormat = "2006-01-02"

// WeekService owns week CRUD and the future/current/past lifecycle.
type WeekService interface {
	Create(ctx context.Context, req *dto.CreateWeekRequest) (*dto.WeekResponse, error)
	GetByID(ctx context.Context, id string) (*dto.WeekResponse, error)
	List(ctx context.Context) ([]dto.WeekResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateWeekRequest) (*dto.WeekResponse, error)
	Delete(ctx context.Context, id string) error

	// RefreshAllStatuses recomputes every week's lifecycle status from
	// the injected clock and persists only the weeks whose status
	// changed. Weeks are independent; order does not matter.
	RefreshAllStatuses(ctx context.Context) error

	// GetCurrent refreshes statuses first (they must be fresh before
	// being queried), then returns the unique current week. During a
	// calendar gap it falls back to the nearest future week so schedule
	// views never show an empty state while weeks remain.
	GetCurrent(ctx context.Context) (*dto.WeekResponse, error)
}

type weekService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewWeekService creates a WeekService. The clock is injected so the
// lifecycle rules stay testable with fixed dates.
func NewWeekService(repo *repository.Repository, logger *zap.Logger, now func() time.Time) WeekService {
	if now == nil {
		now = time.Now
	}
	return &weekService{repo: repo, logger: logger, now: now}
}

// StatusForDates computes the lifecycle status of a [start, end] week
// against "now". The range is inclusive on both ends: current covers
// start 00:00:00 through end 23:59:59; past begins strictly after the
// end of the end date. Time only moves forward, so no transition ever
// runs backwards.
func StatusForDates(now, start, end time.Time) string {
	dayStart := truncateToDay(start)
	dayAfterEnd := truncateToDay(end).AddDate(0, 0, 1)

	switch {
	case now.Before(dayStart):
		return model.WeekStatusFuture
	case now.Before(dayAfterEnd):
		return model.WeekStatusCurrent
	default:
		return model.WeekStatusPast
	}
}

// ────────────────────── Create ──────────────────────

// Create validates the date range but deliberately does not check for
// overlap with stored weeks: the no-overlap invariant is only enforced
// by the import pipeline. Manual creation inherits that weakness.
func (s *weekService) Create(ctx context.Context, req *dto.CreateWeekRequest) (*dto.WeekResponse, error) {
	start, err := time.Parse(weekDateFormat, req.StartDate)
	if err != nil {
		return nil, ErrWeekDateInvalid
	}
	end, err := time.Parse(weekDateFormat, req.EndDate)
	if err != nil {
		return nil, ErrWeekDateInvalid
	}
	if end.Before(start) {
		return nil, ErrWeekDateInvalid
	}

	week := &model.Week{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		Status:    StatusForDates(s.now(), start, end),
	}

	if err := s.repo.Week.Create(ctx, week); err != nil {
		s.logger.Error("create week failed", zap.Error(err))
		return nil, err
	}

	return toWeekResponse(week), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *weekService) GetByID(ctx context.Context, id string) (*dto.WeekResponse, error) {
	week, err := s.repo.Week.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWeekNotFound
		}
		s.logger.Error("get week failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toWeekResponse(week), nil
}

// ────────────────────── List ──────────────────────

func (s *weekService) List(ctx context.Context) ([]dto.WeekResponse, error) {
	weeks, err := s.repo.Week.List(ctx)
	if err != nil {
		s.logger.Error("list weeks failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.WeekResponse, 0, len(weeks))
	for i := range weeks {
		result = append(result, *toWeekResponse(&weeks[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *weekService) Update(ctx context.Context, id string, req *dto.UpdateWeekRequest) (*dto.WeekResponse, error) {
	week, err := s.repo.Week.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWeekNotFound
		}
		s.logger.Error("get week failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		week.Name = *req.Name
	}
	if req.StartDate != nil {
		start, err := time.Parse(weekDateFormat, *req.StartDate)
		if err != nil {
			return nil, ErrWeekDateInvalid
		}
		week.StartDate = start
	}
	if req.EndDate != nil {
		end, err := time.Parse(weekDateFormat, *req.EndDate)
		if err != nil {
			return nil, ErrWeekDateInvalid
		}
		week.EndDate = end
	}
	if week.EndDate.Before(week.StartDate) {
		return nil, ErrWeekDateInvalid
	}

	// dates may have moved; recompute rather than trust the stored status
	week.Status = StatusForDates(s.now(), week.StartDate, week.EndDate)

	if err := s.repo.Week.Update(ctx, week); err != nil {
		s.logger.Error("update week failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toWeekResponse(week), nil
}

// ────────────────────── Delete ──────────────────────

func (s *weekService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Week.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWeekNotFound
		}
		s.logger.Error("get week failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Week.Delete(ctx, id); err != nil {
		s.logger.Error("delete week failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── RefreshAllStatuses ──────────────────────

func (s *weekService) RefreshAllStatuses(ctx context.Context) error {
	weeks, err := s.repo.Week.List(ctx)
	if err != nil {
		s.logger.Error("list weeks failed", zap.Error(err))
		return err
	}

	now := s.now()
	for i := range weeks {
		w := &weeks[i]
		status := StatusForDates(now, w.StartDate, w.EndDate)
		if status == w.Status {
			continue
		}
		if err := s.repo.Week.UpdateStatus(ctx, w.WeekID, status); err != nil {
			// one failed write must not block the remaining weeks
			s.logger.Error("update week status failed",
				zap.String("id", w.WeekID),
				zap.String("status", status),
				zap.Error(err))
			continue
		}
		s.logger.Info("week status changed",
			zap.String("id", w.WeekID),
			zap.String("name", w.Name),
			zap.String("from", w.Status),
			zap.String("to", status))
	}

	return nil
}

// ────────────────────── GetCurrent ──────────────────────

func (s *weekService) GetCurrent(ctx context.Context) (*dto.WeekResponse, error) {
	if err := s.RefreshAllStatuses(ctx); err != nil {
		return nil, err
	}

	weeks, err := s.repo.Week.List(ctx)
	if err != nil {
		s.logger.Error("list weeks failed", zap.Error(err))
		return nil, err
	}

	now := s.now()
	for i := range weeks {
		if StatusForDates(now, weeks[i].StartDate, weeks[i].EndDate) == model.WeekStatusCurrent {
			return toWeekResponse(&weeks[i]), nil
		}
	}

	// calendar gap: fall back to the nearest future week
	// (List is ordered by start date ascending)
	for i := range weeks {
		if StatusForDates(now, weeks[i].StartDate, weeks[i].EndDate) == model.WeekStatusFuture {
			return toWeekResponse(&weeks[i]), nil
		}
	}

	return nil, ErrNoCurrentWeek
}

// ── helpers ──

func toWeekResponse(week *model.Week) *dto.WeekResponse {
	return &dto.WeekResponse{
		ID:        week.WeekID,
		Name:      week.Name,
		StartDate: week.StartDate.Format(weekDateFormat),
		EndDate:   week.EndDate.Format(weekDateFormat),
		Status:    week.Status,
		CreatedAt: week.CreatedAt.Format(time.RFC3339),
		UpdatedAt: week.UpdatedAt.Format(time.RFC3339),
	}
}
