package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"uni-portal/backend/internal/model"
	"uni-portal/backend/internal/repository"
)

// ── export module errors ──

var (
	ErrExportNoEntries    = errors.New("week has no schedule entries")
	ErrExportGenerateFail = errors.New("failed to generate export file")
)

// icsFloatingFormat is RFC 5545 local ("floating") time: lesson times
// are wall-clock times wherever the reader's calendar lives.
const icsFloatingFormat = "20060102T150405"

// ExportService renders one week's schedule as a downloadable file.
//
// Two formats:
//   - Excel (.xlsx): slot rows x day columns, for printing
//   - iCalendar (.ics): one VEVENT per non-skipped lesson, for phone
//     calendar subscriptions
//
// Both return a bytes.Buffer plus a suggested filename; the handler
// sets the HTTP headers and streams the buffer.
type ExportService interface {
	ExportScheduleXLSX(ctx context.Context, weekID string) (*bytes.Buffer, string, error)
	ExportScheduleICS(ctx context.Context, weekID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── ExportScheduleXLSX ──────────────────────

func (s *exportService) ExportScheduleXLSX(ctx context.Context, weekID string) (*bytes.Buffer, string, error) {
	week, entries, err := s.loadWeek(ctx, weekID)
	if err != nil {
		return nil, "", err
	}

	// cell index: "day:slot" -> text
	cellIndex := make(map[string]string)
	usedDays := make(map[string]bool)
	for i := range entries {
		e := &entries[i]
		if e.Skipped {
			continue
		}
		usedDays[e.Day] = true
		key := fmt.Sprintf("%s:%d", e.Day, e.Slot)
		text := e.Subject
		if e.Room != "" {
			text += ", " + e.Room
		}
		if e.LessonType != "" {
			text += " (" + e.LessonType + ")"
		}
		cellIndex[key] = text
	}
	if len(cellIndex) == 0 {
		return nil, "", ErrExportNoEntries
	}

	// columns follow calendar order, weekend days only when occupied
	var days []string
	for _, day := range CanonicalDays {
		if day == DaySaturday || day == DaySunday {
			if !usedDays[day] {
				continue
			}
		}
		days = append(days, day)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Расписание"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 14)
	for i := range days {
		col, _ := excelize.ColumnNumberToName(2 + i)
		f.SetColWidth(sheetName, col, col, 26)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// title row
	title := fmt.Sprintf("%s (%s - %s)",
		week.Name,
		week.StartDate.Format(conflictDateFormat),
		week.EndDate.Format(conflictDateFormat))
	f.SetCellValue(sheetName, "A1", title)
	f.MergeCell(sheetName, "A1", xlsCell(xlsColName(len(days)), 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// header row
	row := 2
	f.SetCellValue(sheetName, xlsCell("A", row), "Время")
	for i, day := range days {
		f.SetCellValue(sheetName, xlsCell(xlsColName(1+i), row), day)
	}

	// one row per slot, canonical times in column A
	row = 3
	for slot := 0; slot < 6; slot++ {
		start, end := TimeRangeForSlot(slot)
		f.SetCellValue(sheetName, xlsCell("A", row), start+"-"+end)
		for i, day := range days {
			key := fmt.Sprintf("%s:%d", day, slot)
			if text, ok := cellIndex[key]; ok {
				f.SetCellValue(sheetName, xlsCell(xlsColName(1+i), row), text)
			} else {
				f.SetCellValue(sheetName, xlsCell(xlsColName(1+i), row), "-")
			}
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write xlsx failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("schedule_%s.xlsx", week.StartDate.Format(weekDateFormat))
	return buf, filename, nil
}

// ────────────────────── ExportScheduleICS ──────────────────────

func (s *exportService) ExportScheduleICS(ctx context.Context, weekID string) (*bytes.Buffer, string, error) {
	week, entries, err := s.loadWeek(ctx, weekID)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//uni-portal//schedule//RU")

	count := 0
	for i := range entries {
		e := &entries[i]
		if e.Skipped {
			continue
		}

		startClock, endClock := TimeRangeForSlot(e.Slot)
		if e.CustomTime {
			if e.StartTime != nil && *e.StartTime != "" {
				startClock = *e.StartTime
			}
			if e.EndTime != nil && *e.EndTime != "" {
				endClock = *e.EndTime
			}
		}

		day := week.StartDate.AddDate(0, 0, dayOffset(e.Day))
		startAt, ok1 := atClock(day, startClock)
		endAt, ok2 := atClock(day, endClock)
		if !ok1 || !ok2 {
			s.logger.Warn("skip entry with unparsable time",
				zap.String("entry_id", e.EntryID),
				zap.String("start", startClock),
				zap.String("end", endClock))
			continue
		}

		evt := cal.AddEvent(fmt.Sprintf("%s@uni-portal", e.EntryID))
		evt.SetProperty(ics.ComponentPropertyDtStart, startAt.Format(icsFloatingFormat))
		evt.SetProperty(ics.ComponentPropertyDtEnd, endAt.Format(icsFloatingFormat))
		evt.SetSummary(e.Subject)
		if e.Room != "" {
			evt.SetLocation(e.Room)
		}
		desc := e.LessonType
		if e.Teacher != "" {
			if desc != "" {
				desc += ", "
			}
			desc += e.Teacher
		}
		if desc != "" {
			evt.SetDescription(desc)
		}
		count++
	}
	if count == 0 {
		return nil, "", ErrExportNoEntries
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("schedule_%s.ics", week.StartDate.Format(weekDateFormat))
	return buf, filename, nil
}

// ── helpers ──

func (s *exportService) loadWeek(ctx context.Context, weekID string) (*model.Week, []model.ScheduleEntry, error) {
	week, err := s.repo.Week.GetByID(ctx, weekID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrWeekNotFound
		}
		s.logger.Error("get week failed", zap.String("id", weekID), zap.Error(err))
		return nil, nil, err
	}

	entries, err := s.repo.Schedule.ListByWeek(ctx, weekID)
	if err != nil {
		s.logger.Error("list schedule entries failed", zap.String("week_id", weekID), zap.Error(err))
		return nil, nil, err
	}
	if len(entries) == 0 {
		return nil, nil, ErrExportNoEntries
	}

	// stable rendering order: day, then slot
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := dayOffset(entries[i].Day), dayOffset(entries[j].Day)
		if di != dj {
			return di < dj
		}
		return entries[i].Slot < entries[j].Slot
	})

	return week, entries, nil
}

// dayOffset returns the day's 0-based offset from Monday. Entries always
// carry canonical day names, so the fallback only guards corrupt data.
func dayOffset(day string) int {
	for i, d := range CanonicalDays {
		if d == day {
			return i
		}
	}
	return 0
}

// atClock combines a calendar day with an "H:MM" clock string.
func atClock(day time.Time, clock string) (time.Time, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), true
}

func xlsColName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func xlsCell(col string, row int) string {
	return col + strconv.Itoa(row)
}
