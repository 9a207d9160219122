package service

// ── timetable vocabulary normalization ──────────────────────
//
// Scraped source pages are inconsistent: day names arrive abbreviated or
// missing, lesson types as short codes, start times in free form. These
// helpers are total functions: every input maps to some canonical value,
// never an error, so one messy row can never break an import.
// ─────────────────────────────────────────────────────────────

// Canonical day-of-week names.
const (
	DayMonday    = "Понедельник"
	DayTuesday   = "Вторник"
	DayWednesday = "Среда"
	DayThursday  = "Четверг"
	DayFriday    = "Пятница"
	DaySaturday  = "Суббота"
	DaySunday    = "Воскресенье"
)

// CanonicalDays lists the seven canonical names in calendar order,
// Monday first.
var CanonicalDays = []string{
	DayMonday, DayTuesday, DayWednesday, DayThursday,
	DayFriday, DaySaturday, DaySunday,
}

// dayAliases maps recognized day tokens (two-letter abbreviations and the
// canonical full names themselves, case-sensitive) to canonical names.
var dayAliases = map[string]string{
	"Пн": DayMonday,
	"Вт": DayTuesday,
	"Ср": DayWednesday,
	"Чт": DayThursday,
	"Пт": DayFriday,
	"Сб": DaySaturday,
	"Вс": DaySunday,

	DayMonday:    DayMonday,
	DayTuesday:   DayTuesday,
	DayWednesday: DayWednesday,
	DayThursday:  DayThursday,
	DayFriday:    DayFriday,
	DaySaturday:  DaySaturday,
	DaySunday:    DaySunday,
}

// NormalizeDay maps a raw day token to a canonical day name.
// Unrecognized input (including the scraper's "не определено" sentinel)
// falls back to Monday, the named default of the import pipeline.
func NormalizeDay(raw string) string {
	if day, ok := dayAliases[raw]; ok {
		return day
	}
	return DayMonday
}

// Canonical lesson-type labels.
const (
	LessonTypeLecture      = "Лекция"
	LessonTypePractice     = "Практика"
	LessonTypeLab          = "Лабораторная"
	LessonTypeConsultation = "Консультация"
	LessonTypeRetake       = "Пересдача"
	LessonTypeExam         = "Экзамен"
	LessonTypeCredit       = "Зачет"
)

// lessonTypeCodes maps the scraper's short codes to canonical labels.
var lessonTypeCodes = map[string]string{
	"л":  LessonTypeLecture,
	"пр": LessonTypePractice,
	"лп": LessonTypeLab,
	"к":  LessonTypeConsultation,
}

// NormalizeLessonType expands known short codes; any other non-empty
// value passes through unchanged so lesson types outside the known set
// (Пересдача, Экзамен, Зачет, one-off events) survive the import.
// Empty input stays empty.
func NormalizeLessonType(raw string) string {
	if label, ok := lessonTypeCodes[raw]; ok {
		return label
	}
	return raw
}

// slotByStartTime maps the five canonical start-time strings to slot
// numbers 1-5. Slot 0 (the early extra period) is the default for
// everything else.
var slotByStartTime = map[string]int{
	"10:10": 1,
	"11:50": 2,
	"13:50": 3,
	"15:30": 4,
	"17:10": 5,
}

// SlotForStartTime derives a slot number from a start-time string.
//
// Lossy by design: only the five exact canonical strings are recognized.
// Any other time, including legitimate times formatted differently
// ("9:00", "10:10:00") and the slot-0 start time itself, collapses to
// slot 0.
func SlotForStartTime(startTime string) int {
	return slotByStartTime[startTime]
}

// slotTimes is the fixed slot-to-clock-time table for slots 0-5.
// Slots 0 and 5 are the optional extra periods.
var slotTimes = [6][2]string{
	{"8:30", "10:00"},
	{"10:10", "11:40"},
	{"11:50", "13:20"},
	{"13:50", "15:20"},
	{"15:30", "17:00"},
	{"17:10", "18:40"},
}

// TimeRangeForSlot returns the canonical start/end clock times for a slot.
// Out-of-range slots get the slot-0 range, keeping the function total.
func TimeRangeForSlot(slot int) (start, end string) {
	if slot < 0 || slot >= len(slotTimes) {
		slot = 0
	}
	return slotTimes[slot][0], slotTimes[slot][1]
}
