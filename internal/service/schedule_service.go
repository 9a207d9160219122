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

// ── schedule module errors ──

var (
	ErrEntryNotFound    = errors.New("schedule entry not found")
	ErrEntrySlotTaken   = errors.New("this day and slot already has a lesson")
	ErrEntryTimeInvalid = errors.New("explicit times require the custom time flag")
)

// ScheduleService owns manual schedule-entry CRUD. Unlike the importer,
// manual creation enforces the unique (week, day, slot) rule for
// non-skipped entries.
type ScheduleService interface {
	Create(ctx context.Context, req *dto.CreateScheduleEntryRequest) (*dto.ScheduleEntryResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ScheduleEntryResponse, error)
	// ListByWeek returns the week's entries grouped by canonical day.
	ListByWeek(ctx context.Context, weekID string) (*dto.WeekScheduleResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateScheduleEntryRequest) (*dto.ScheduleEntryResponse, error)
	Delete(ctx context.Context, id string) error
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService creates a ScheduleService.
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *scheduleService) Create(ctx context.Context, req *dto.CreateScheduleEntryRequest) (*dto.ScheduleEntryResponse, error) {
	if _, err := s.repo.Week.GetByID(ctx, req.WeekID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWeekNotFound
		}
		s.logger.Error("get week failed", zap.String("id", req.WeekID), zap.Error(err))
		return nil, err
	}

	if !req.CustomTime && (req.StartTime != nil || req.EndTime != nil) {
		return nil, ErrEntryTimeInvalid
	}

	day := NormalizeDay(req.Day)

	taken, err := s.repo.Schedule.ExistsActive(ctx, req.WeekID, day, req.Slot)
	if err != nil {
		s.logger.Error("check slot failed", zap.Error(err))
		return nil, err
	}
	if taken {
		return nil, ErrEntrySlotTaken
	}

	entry := &model.ScheduleEntry{
		WeekID:     req.WeekID,
		Day:        day,
		Slot:       req.Slot,
		Subject:    req.Subject,
		Teacher:    req.Teacher,
		Room:       req.Room,
		LessonType: NormalizeLessonType(req.LessonType),
		CustomTime: req.CustomTime,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}

	if err := s.repo.Schedule.Create(ctx, entry); err != nil {
		s.logger.Error("create schedule entry failed", zap.Error(err))
		return nil, err
	}

	return toEntryResponse(entry), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *scheduleService) GetByID(ctx context.Context, id string) (*dto.ScheduleEntryResponse, error) {
	entry, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		s.logger.Error("get schedule entry failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toEntryResponse(entry), nil
}

// ────────────────────── ListByWeek ──────────────────────

func (s *scheduleService) ListByWeek(ctx context.Context, weekID string) (*dto.WeekScheduleResponse, error) {
	week, err := s.repo.Week.GetByID(ctx, weekID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWeekNotFound
		}
		s.logger.Error("get week failed", zap.String("id", weekID), zap.Error(err))
		return nil, err
	}

	entries, err := s.repo.Schedule.ListByWeek(ctx, weekID)
	if err != nil {
		s.logger.Error("list schedule entries failed", zap.String("week_id", weekID), zap.Error(err))
		return nil, err
	}

	days := make(map[string][]dto.ScheduleEntryResponse)
	for i := range entries {
		resp := toEntryResponse(&entries[i])
		days[resp.Day] = append(days[resp.Day], *resp)
	}

	return &dto.WeekScheduleResponse{
		Week: toWeekResponse(week),
		Days: days,
	}, nil
}

// ────────────────────── Update ──────────────────────

func (s *scheduleService) Update(ctx context.Context, id string, req *dto.UpdateScheduleEntryRequest) (*dto.ScheduleEntryResponse, error) {
	entry, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		s.logger.Error("get schedule entry failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Day != nil {
		entry.Day = NormalizeDay(*req.Day)
	}
	if req.Slot != nil {
		entry.Slot = *req.Slot
	}
	if req.Subject != nil {
		entry.Subject = *req.Subject
	}
	if req.Teacher != nil {
		entry.Teacher = *req.Teacher
	}
	if req.Room != nil {
		entry.Room = *req.Room
	}
	if req.LessonType != nil {
		entry.LessonType = NormalizeLessonType(*req.LessonType)
	}
	if req.CustomTime != nil {
		entry.CustomTime = *req.CustomTime
	}
	if req.StartTime != nil {
		entry.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		entry.EndTime = req.EndTime
	}
	if req.Skipped != nil {
		entry.Skipped = *req.Skipped
	}

	// keep the custom-time invariant: no flag, no explicit times
	if !entry.CustomTime {
		entry.StartTime = nil
		entry.EndTime = nil
	}

	if err := s.repo.Schedule.Update(ctx, entry); err != nil {
		s.logger.Error("update schedule entry failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toEntryResponse(entry), nil
}

// ────────────────────── Delete ──────────────────────

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Schedule.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEntryNotFound
		}
		s.logger.Error("get schedule entry failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		s.logger.Error("delete schedule entry failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── helpers ──

// toEntryResponse fills the effective clock times: custom times when the
// flag is set, otherwise the canonical slot table.
func toEntryResponse(entry *model.ScheduleEntry) *dto.ScheduleEntryResponse {
	start, end := TimeRangeForSlot(entry.Slot)
	if entry.CustomTime {
		if entry.StartTime != nil {
			start = *entry.StartTime
		}
		if entry.EndTime != nil {
			end = *entry.EndTime
		}
	}

	return &dto.ScheduleEntryResponse{
		ID:         entry.EntryID,
		WeekID:     entry.WeekID,
		Day:        entry.Day,
		Slot:       entry.Slot,
		Subject:    entry.Subject,
		Teacher:    entry.Teacher,
		Room:       entry.Room,
		LessonType: entry.LessonType,
		CustomTime: entry.CustomTime,
		StartTime:  start,
		EndTime:    end,
		Skipped:    entry.Skipped,
	}
}
