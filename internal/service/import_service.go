package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"uni-portal/backend/internal/dto"
	"uni-portal/backend/internal/model"
	"uni-portal/backend/internal/repository"
)

// ── import module errors ──

var ErrImportEmptyBatch = errors.New("import batch must contain at least one week")

// skip reasons surfaced in the per-week outcome records
const reasonIncompleteWeek = "incomplete week data"

// ImportService drives the batch import of externally-scraped weekly
// timetables. A batch never aborts because one week failed: each week is
// processed independently and its outcome recorded in the report.
type ImportService interface {
	// ImportWeeks processes the submitted weeks in input order and
	// returns the audit report. It returns an error only when the batch
	// itself is empty or the existing-week set cannot be read at all;
	// every other failure is absorbed into the report.
	ImportWeeks(ctx context.Context, specs []dto.WeekImportSpec) (*dto.ImportReport, error)
}

type importService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewImportService creates an ImportService with an injected clock.
func NewImportService(repo *repository.Repository, logger *zap.Logger, now func() time.Time) ImportService {
	if now == nil {
		now = time.Now
	}
	return &importService{repo: repo, logger: logger, now: now}
}

func (s *importService) ImportWeeks(ctx context.Context, specs []dto.WeekImportSpec) (*dto.ImportReport, error) {
	if len(specs) == 0 {
		return nil, ErrImportEmptyBatch
	}

	// The conflict set is fixed once, at batch start. Two submitted
	// weeks that overlap each other (but no stored week) therefore both
	// succeed. Kept as-is: re-running a scrape must stay idempotent at
	// the week level, and the permissive behavior is covered by tests.
	existing, err := s.repo.Week.List(ctx)
	if err != nil {
		s.logger.Error("list weeks failed", zap.Error(err))
		return nil, err
	}

	report := &dto.ImportReport{
		TotalWeeks: len(specs),
		Outcomes:   make([]dto.WeekImportOutcome, 0, len(specs)),
	}

	for i := range specs {
		outcome := s.importWeek(ctx, &specs[i], existing)
		switch outcome.Status {
		case dto.ImportOutcomeSuccess:
			report.SuccessCount++
			report.ImportedItemsCount += outcome.ItemsImported
		case dto.ImportOutcomeSkipped:
			report.SkippedCount++
		default:
			report.ErrorCount++
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	s.logger.Info("import batch finished",
		zap.Int("total", report.TotalWeeks),
		zap.Int("success", report.SuccessCount),
		zap.Int("skipped", report.SkippedCount),
		zap.Int("errors", report.ErrorCount),
		zap.Int("items", report.ImportedItemsCount))

	return report, nil
}

// importWeek handles one submitted week and never returns an error:
// every failure mode becomes an outcome record.
func (s *importService) importWeek(ctx context.Context, spec *dto.WeekImportSpec, existing []model.Week) dto.WeekImportOutcome {
	outcome := dto.WeekImportOutcome{
		WeekName: spec.Name,
		Status:   dto.ImportOutcomeSkipped,
	}

	// 1. completeness
	start, startErr := time.Parse(weekDateFormat, spec.StartDate)
	end, endErr := time.Parse(weekDateFormat, spec.EndDate)
	if strings.TrimSpace(spec.Name) == "" ||
		startErr != nil || endErr != nil ||
		end.Before(start) ||
		len(spec.Rows) == 0 {
		outcome.Reason = reasonIncompleteWeek
		return outcome
	}

	// 2. conflict against the batch-start snapshot of stored weeks
	if conflict := FindConflict(start, end, existing); conflict != nil {
		outcome.Reason = conflict.Reason
		return outcome
	}

	// 3. create the week; status derived, never authored
	week := &model.Week{
		Name:      spec.Name,
		StartDate: start,
		EndDate:   end,
		Status:    StatusForDates(s.now(), start, end),
	}
	if err := s.repo.Week.Create(ctx, week); err != nil {
		s.logger.Error("import: create week failed",
			zap.String("week", spec.Name), zap.Error(err))
		outcome.Status = dto.ImportOutcomeError
		outcome.Reason = err.Error()
		return outcome
	}
	outcome.WeekID = week.WeekID

	// 4. rows, in input order
	for i := range spec.Rows {
		row := &spec.Rows[i]
		if strings.TrimSpace(row.Subject) == "" || strings.TrimSpace(row.Day) == "" {
			continue
		}

		startTime := row.StartTime
		endTime := row.EndTime
		entry := &model.ScheduleEntry{
			WeekID:     week.WeekID,
			Day:        NormalizeDay(row.Day),
			Slot:       SlotForStartTime(row.StartTime),
			Subject:    row.Subject,
			Teacher:    row.Teacher,
			Room:       row.Room,
			LessonType: NormalizeLessonType(row.LessonType),
			// the source's literal times are authoritative, even when
			// they happen to match the canonical slot times
			CustomTime: true,
			StartTime:  &startTime,
			EndTime:    &endTime,
		}

		if err := s.repo.Schedule.Create(ctx, entry); err != nil {
			// one bad row must not sink the rest of the week
			s.logger.Warn("import: create schedule entry failed",
				zap.String("week", spec.Name),
				zap.String("subject", row.Subject),
				zap.Error(err))
			continue
		}
		outcome.ItemsImported++
	}

	outcome.Status = dto.ImportOutcomeSuccess
	return outcome
}
