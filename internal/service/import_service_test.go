package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"uni-portal/backend/internal/dto"
	"uni-portal/backend/internal/model"
)

// ── test helpers ──

func setupTestImportService() (ImportService, *mockWeekRepo, *mockScheduleRepo) {
	repo, weekRepo, scheduleRepo := newTestRepository()
	logger := zap.NewNop()
	svc := NewImportService(repo, logger, fixedClock("2026-09-01T10:00:00Z"))
	return svc, weekRepo, scheduleRepo
}

func sampleRows() []dto.RawScheduleRow {
	return []dto.RawScheduleRow{
		{Day: "Пн", Subject: "Математический анализ", Teacher: "Иванов И.И.", Room: "301", LessonType: "л", StartTime: "10:10", EndTime: "11:40"},
		{Day: "Вт", Subject: "Физика", Room: "205", LessonType: "пр", StartTime: "11:50", EndTime: "13:20"},
		{Day: "Ср", Subject: "Программирование", LessonType: "лп", StartTime: "9:00", EndTime: "10:30"},
	}
}

// ── ImportWeeks ──

func TestImportService_SingleWeek(t *testing.T) {
	svc, weekRepo, scheduleRepo := setupTestImportService()

	report, err := svc.ImportWeeks(context.Background(), []dto.WeekImportSpec{{
		Name:      "Неделя 1",
		StartDate: "2026-09-07",
		EndDate:   "2026-09-13",
		Rows:      sampleRows(),
	}})
	if err != nil {
		t.Fatalf("ImportWeeks failed: %v", err)
	}

	if report.TotalWeeks != 1 || report.SuccessCount != 1 ||
		report.SkippedCount != 0 || report.ErrorCount != 0 {
		t.Errorf("report counters = %+v", report)
	}
	if report.ImportedItemsCount != 3 {
		t.Errorf("imported items = %d, want 3", report.ImportedItemsCount)
	}
	if len(weekRepo.weeks) != 1 {
		t.Fatalf("stored weeks = %d, want 1", len(weekRepo.weeks))
	}

	// every imported entry carries custom times and normalized vocabulary
	for _, e := range scheduleRepo.entries {
		if !e.CustomTime {
			t.Errorf("entry %s: imported entries must carry custom_time", e.Subject)
		}
		if e.StartTime == nil || e.EndTime == nil {
			t.Errorf("entry %s: literal times must be preserved", e.Subject)
		}
	}

	byDay := make(map[string]*model.ScheduleEntry)
	for _, e := range scheduleRepo.entries {
		byDay[e.Day] = e
	}
	if e := byDay[DayMonday]; e == nil || e.Slot != 1 || e.LessonType != LessonTypeLecture {
		t.Errorf("Monday entry wrong: %+v", e)
	}
	if e := byDay[DayTuesday]; e == nil || e.Slot != 2 || e.LessonType != LessonTypePractice {
		t.Errorf("Tuesday entry wrong: %+v", e)
	}
	// "9:00" is not a canonical start time: slot collapses to 0
	if e := byDay[DayWednesday]; e == nil || e.Slot != 0 || e.LessonType != LessonTypeLab {
		t.Errorf("Wednesday entry wrong: %+v", e)
	}
}

func TestImportService_EmptyBatch(t *testing.T) {
	svc, _, _ := setupTestImportService()

	if _, err := svc.ImportWeeks(context.Background(), nil); !errors.Is(err, ErrImportEmptyBatch) {
		t.Errorf("want ErrImportEmptyBatch, got %v", err)
	}
	if _, err := svc.ImportWeeks(context.Background(), []dto.WeekImportSpec{}); !errors.Is(err, ErrImportEmptyBatch) {
		t.Errorf("want ErrImportEmptyBatch, got %v", err)
	}
}

func TestImportService_ConflictSkipsWeek(t *testing.T) {
	svc, weekRepo, _ := setupTestImportService()
	weekRepo.weeks["w1"] = &model.Week{
		WeekID:    "w1",
		Name:      "Неделя 1",
		StartDate: day("2026-09-07"),
		EndDate:   day("2026-09-13"),
	}

	report, err := svc.ImportWeeks(context.Background(), []dto.WeekImportSpec{{
		Name:      "Неделя 1 (повтор)",
		StartDate: "2026-09-07",
		EndDate:   "2026-09-13",
		Rows:      sampleRows(),
	}})
	if err != nil {
		t.Fatalf("ImportWeeks failed: %v", err)
	}

	if report.SuccessCount != 0 || report.SkippedCount != 1 {
		t.Errorf("report counters = %+v", report)
	}
	outcome := report.Outcomes[0]
	if outcome.Status != dto.ImportOutcomeSkipped {
		t.Errorf("outcome status = %s, want skipped", outcome.Status)
	}
	if !strings.Contains(outcome.Reason, "Неделя 1") || !strings.Contains(outcome.Reason, "07.09.2026") {
		t.Errorf("skip reason must name the colliding week and dates: %q", outcome.Reason)
	}
	if len(weekRepo.weeks) != 1 {
		t.Errorf("no new week may be stored on conflict, have %d", len(weekRepo.weeks))
	}
}

// The conflict set is snapshotted at batch start, so two submitted weeks
// overlapping each other (but nothing stored) both import.
func TestImportService_SameBatchOverlapBothSucceed(t *testing.T) {
	svc, weekRepo, _ := setupTestImportService()

	report, err := svc.ImportWeeks(context.Background(), []dto.WeekImportSpec{
		{Name: "Неделя А", StartDate: "2026-09-07", EndDate: "2026-09-13", Rows: sampleRows()},
		{Name: "Неделя Б", StartDate: "2026-09-10", EndDate: "2026-09-16", Rows: sampleRows()},
	})
	if err != nil {
		t.Fatalf("ImportWeeks failed: %v", err)
	}

	if report.SuccessCount != 2 || report.SkippedCount != 0 {
		t.Errorf("report counters = %+v", report)
	}
	if len(weekRepo.weeks) != 2 {
		t.Errorf("stored weeks = %d, want 2", len(weekRepo.weeks))
	}
}

func TestImportService_IncompleteWeeksSkipped(t *testing.T) {
	svc, weekRepo, _ := setupTestImportService()

	specs := []dto.WeekImportSpec{
		{Name: "", StartDate: "2026-09-07", EndDate: "2026-09-13", Rows: sampleRows()},
		{Name: "   ", StartDate: "2026-09-07", EndDate: "2026-09-13", Rows: sampleRows()},
		{Name: "w", StartDate: "bogus", EndDate: "2026-09-13", Rows: sampleRows()},
		{Name: "w", StartDate: "2026-09-13", EndDate: "2026-09-07", Rows: sampleRows()},
		{Name: "w", StartDate: "2026-09-07", EndDate: "2026-09-13", Rows: nil},
	}

	report, err := svc.ImportWeeks(context.Background(), specs)
	if err != nil {
		t.Fatalf("ImportWeeks failed: %v", err)
	}

	if report.SkippedCount != len(specs) || report.SuccessCount != 0 {
		t.Errorf("report counters = %+v", report)
	}
	for i, outcome := range report.Outcomes {
		if outcome.Reason != reasonIncompleteWeek {
			t.Errorf("outcome %d reason = %q, want %q", i, outcome.Reason, reasonIncompleteWeek)
		}
	}
	if len(weekRepo.weeks) != 0 {
		t.Errorf("incomplete weeks must not be stored, have %d", len(weekRepo.weeks))
	}
}

func TestImportService_RowsMissingSubjectOrDaySkipped(t *testing.T) {
	svc, _, scheduleRepo := setupTestImportService()

	report, err := svc.ImportWeeks(context.Background(), []dto.WeekImportSpec{{
		Name:      "Неделя 1",
		StartDate: "2026-09-07",
		EndDate:   "2026-09-13",
		Rows: []dto.RawScheduleRow{
			{Day: "Пн", Subject: "Математика", StartTime: "10:10", EndTime: "11:40"},
			{Day: "Пн", Subject: "", StartTime: "11:50", EndTime: "13:20"},
			{Day: "", Subject: "Физика", StartTime: "13:50", EndTime: "15:20"},
		},
	}})
	if err != nil {
		t.Fatalf("ImportWeeks failed: %v", err)
	}

	// the week itself still succeeds; only the bad rows are dropped
	if report.SuccessCount != 1 {
		t.Errorf("success count = %d, want 1", report.SuccessCount)
	}
	if report.ImportedItemsCount != 1 {
		t.Errorf("imported items = %d, want 1", report.ImportedItemsCount)
	}
	if len(scheduleRepo.entries) != 1 {
		t.Errorf("stored entries = %d, want 1", len(scheduleRepo.entries))
	}
}

func TestImportService_RowCreateFailureNotCounted(t *testing.T) {
	svc, _, scheduleRepo := setupTestImportService()
	scheduleRepo.createErrOn = "Физика"

	report, err := svc.ImportWeeks(context.Background(), []dto.WeekImportSpec{{
		Name:      "Неделя 1",
		StartDate: "2026-09-07",
		EndDate:   "2026-09-13",
		Rows: []dto.RawScheduleRow{
			{Day: "Пн", Subject: "Математика", StartTime: "10:10", EndTime: "11:40"},
			{Day: "Вт", Subject: "Физика", StartTime: "11:50", EndTime: "13:20"},
		},
	}})
	if err != nil {
		t.Fatalf("ImportWeeks failed: %v", err)
	}

	// the failed row is logged and dropped; the week still succeeds
	if report.SuccessCount != 1 {
		t.Errorf("success count = %d, want 1", report.SuccessCount)
	}
	if report.ImportedItemsCount != 1 {
		t.Errorf("imported items = %d, want 1", report.ImportedItemsCount)
	}
}

func TestImportService_WeekCreateFailureIsErrorOutcome(t *testing.T) {
	svc, weekRepo, _ := setupTestImportService()
	weekRepo.createErr = errors.New("db down")

	report, err := svc.ImportWeeks(context.Background(), []dto.WeekImportSpec{{
		Name:      "Неделя 1",
		StartDate: "2026-09-07",
		EndDate:   "2026-09-13",
		Rows:      sampleRows(),
	}})
	if err != nil {
		t.Fatalf("ImportWeeks failed: %v", err)
	}

	if report.ErrorCount != 1 || report.SuccessCount != 0 {
		t.Errorf("report counters = %+v", report)
	}
	if report.Outcomes[0].Status != dto.ImportOutcomeError {
		t.Errorf("outcome status = %s, want error", report.Outcomes[0].Status)
	}
}

func TestImportService_ListFailurePropagates(t *testing.T) {
	svc, weekRepo, _ := setupTestImportService()
	weekRepo.listErr = errors.New("db down")

	if _, err := svc.ImportWeeks(context.Background(), []dto.WeekImportSpec{{
		Name: "w", StartDate: "2026-09-07", EndDate: "2026-09-13", Rows: sampleRows(),
	}}); err == nil {
		t.Error("unreadable week store must fail the whole batch")
	}
}

func TestImportService_MixedBatchCounts(t *testing.T) {
	svc, weekRepo, _ := setupTestImportService()
	weekRepo.weeks["w1"] = &model.Week{
		WeekID:    "w1",
		Name:      "Занятая",
		StartDate: day("2026-10-05"),
		EndDate:   day("2026-10-11"),
	}

	report, err := svc.ImportWeeks(context.Background(), []dto.WeekImportSpec{
		{Name: "Хорошая", StartDate: "2026-09-07", EndDate: "2026-09-13", Rows: sampleRows()},
		{Name: "Конфликтная", StartDate: "2026-10-05", EndDate: "2026-10-11", Rows: sampleRows()},
		{Name: "", StartDate: "2026-11-02", EndDate: "2026-11-08", Rows: sampleRows()},
	})
	if err != nil {
		t.Fatalf("ImportWeeks failed: %v", err)
	}

	if report.TotalWeeks != 3 || report.SuccessCount != 1 ||
		report.SkippedCount != 2 || report.ErrorCount != 0 {
		t.Errorf("report counters = %+v", report)
	}
	if len(report.Outcomes) != 3 {
		t.Errorf("outcomes = %d, want 3 in input order", len(report.Outcomes))
	}
}
