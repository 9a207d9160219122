package dto

// ── import module DTOs ──

// Import outcome statuses (per submitted week).
const (
	ImportOutcomeSuccess = "success"
	ImportOutcomeSkipped = "skipped"
	ImportOutcomeError   = "error"
)

// RawScheduleRow is one externally-scraped timetable line. All fields are
// free-form strings exactly as the scraping collaborator produced them;
// the importer normalizes day/lesson-type/time vocabulary itself.
type RawScheduleRow struct {
	Date       string `json:"date"`
	Day        string `json:"day"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Subject    string `json:"subject"`
	LessonType string `json:"lesson_type"`
	Room       string `json:"room"`
	Teacher    string `json:"teacher"`
}

// WeekImportSpec is one candidate week inside an import batch: a claimed
// date range plus its raw rows.
type WeekImportSpec struct {
	Name      string           `json:"name"`
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	Rows      []RawScheduleRow `json:"rows"`
}

// ImportWeeksRequest is the batch payload.
type ImportWeeksRequest struct {
	Weeks []WeekImportSpec `json:"weeks" binding:"required,min=1"`
}

// WeekImportOutcome records how one submitted week was handled.
type WeekImportOutcome struct {
	WeekName      string `json:"week_name"`
	Status        string `json:"status"` // success | skipped | error
	Reason        string `json:"reason,omitempty"`
	ItemsImported int    `json:"items_imported"`
	WeekID        string `json:"week_id,omitempty"`
}

// ImportReport is the audit report for one whole batch run.
type ImportReport struct {
	TotalWeeks         int                 `json:"total_weeks"`
	SuccessCount       int                 `json:"success_count"`
	SkippedCount       int                 `json:"skipped_count"`
	ErrorCount         int                 `json:"error_count"`
	ImportedItemsCount int                 `json:"imported_items_count"`
	Outcomes           []WeekImportOutcome `json:"outcomes"`
}
