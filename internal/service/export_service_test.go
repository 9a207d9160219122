package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"uni-portal/backend/internal/model"
)

// ── test helpers ──

func setupTestExportService() (ExportService, *mockWeekRepo, *mockScheduleRepo) {
	repo, weekRepo, scheduleRepo := newTestRepository()
	logger := zap.NewNop()
	svc := NewExportService(repo, logger)

	weekRepo.weeks["w1"] = &model.Week{
		WeekID:    "w1",
		Name:      "Неделя 1",
		StartDate: day("2026-09-07"), // Monday
		EndDate:   day("2026-09-13"),
	}
	return svc, weekRepo, scheduleRepo
}

func seedEntry(scheduleRepo *mockScheduleRepo, id, dayName string, slot int, subject string) {
	scheduleRepo.entries[id] = &model.ScheduleEntry{
		EntryID: id, WeekID: "w1", Day: dayName, Slot: slot, Subject: subject,
	}
}

// ── ExportScheduleXLSX ──

func TestExportService_XLSX(t *testing.T) {
	svc, _, scheduleRepo := setupTestExportService()
	seedEntry(scheduleRepo, "e1", DayMonday, 1, "Математика")
	seedEntry(scheduleRepo, "e2", DayTuesday, 2, "Физика")

	buf, filename, err := svc.ExportScheduleXLSX(context.Background(), "w1")
	if err != nil {
		t.Fatalf("ExportScheduleXLSX failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty xlsx buffer")
	}
	if filename != "schedule_2026-09-07.xlsx" {
		t.Errorf("filename = %s", filename)
	}
	// xlsx files are zip archives
	if !strings.HasPrefix(buf.String(), "PK") {
		t.Error("output is not a zip container")
	}
}

func TestExportService_XLSX_WeekMissing(t *testing.T) {
	svc, _, _ := setupTestExportService()
	if _, _, err := svc.ExportScheduleXLSX(context.Background(), "missing"); !errors.Is(err, ErrWeekNotFound) {
		t.Errorf("want ErrWeekNotFound, got %v", err)
	}
}

func TestExportService_XLSX_NoEntries(t *testing.T) {
	svc, _, _ := setupTestExportService()
	if _, _, err := svc.ExportScheduleXLSX(context.Background(), "w1"); !errors.Is(err, ErrExportNoEntries) {
		t.Errorf("want ErrExportNoEntries, got %v", err)
	}
}

func TestExportService_XLSX_AllSkippedEntries(t *testing.T) {
	svc, _, scheduleRepo := setupTestExportService()
	scheduleRepo.entries["e1"] = &model.ScheduleEntry{
		EntryID: "e1", WeekID: "w1", Day: DayMonday, Slot: 1,
		Subject: "Математика", Skipped: true,
	}

	if _, _, err := svc.ExportScheduleXLSX(context.Background(), "w1"); !errors.Is(err, ErrExportNoEntries) {
		t.Errorf("want ErrExportNoEntries, got %v", err)
	}
}

// ── ExportScheduleICS ──

func TestExportService_ICS(t *testing.T) {
	svc, _, scheduleRepo := setupTestExportService()
	seedEntry(scheduleRepo, "e1", DayMonday, 1, "Математика")
	start, end := "9:15", "10:45"
	scheduleRepo.entries["e2"] = &model.ScheduleEntry{
		EntryID: "e2", WeekID: "w1", Day: DayWednesday, Slot: 0,
		Subject: "Консультация", Room: "301",
		CustomTime: true, StartTime: &start, EndTime: &end,
	}

	buf, filename, err := svc.ExportScheduleICS(context.Background(), "w1")
	if err != nil {
		t.Fatalf("ExportScheduleICS failed: %v", err)
	}
	if filename != "schedule_2026-09-07.ics" {
		t.Errorf("filename = %s", filename)
	}

	out := buf.String()
	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Error("not a calendar document")
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("events = %d, want 2", got)
	}
	if !strings.Contains(out, "SUMMARY:Математика") {
		t.Error("subject missing from events")
	}
	if !strings.Contains(out, "LOCATION:301") {
		t.Error("room missing from event")
	}
	// slot-1 entry on the week's Monday: 2026-09-07 at 10:10 local time
	if !strings.Contains(out, "20260907T101000") {
		t.Error("slot-derived event start missing")
	}
	// custom-time entry on Wednesday at 9:15
	if !strings.Contains(out, "20260909T091500") {
		t.Error("custom-time event start missing")
	}
}

func TestExportService_ICS_SkippedEntriesExcluded(t *testing.T) {
	svc, _, scheduleRepo := setupTestExportService()
	seedEntry(scheduleRepo, "e1", DayMonday, 1, "Математика")
	scheduleRepo.entries["e2"] = &model.ScheduleEntry{
		EntryID: "e2", WeekID: "w1", Day: DayMonday, Slot: 2,
		Subject: "Отменённая", Skipped: true,
	}

	buf, _, err := svc.ExportScheduleICS(context.Background(), "w1")
	if err != nil {
		t.Fatalf("ExportScheduleICS failed: %v", err)
	}
	if got := strings.Count(buf.String(), "BEGIN:VEVENT"); got != 1 {
		t.Errorf("events = %d, want 1 (skipped lessons excluded)", got)
	}
}
