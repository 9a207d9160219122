package dto

// ── schedule module DTOs ──

// CreateScheduleEntryRequest is the manual single-entry creation payload.
// StartTime/EndTime are only accepted when CustomTime is true.
type CreateScheduleEntryRequest struct {
	WeekID     string  `json:"week_id"     binding:"required,uuid"`
	Day        string  `json:"day"         binding:"required"`
	Slot       int     `json:"slot"        binding:"min=0,max=5"`
	Subject    string  `json:"subject"     binding:"required,min=1,max=200"`
	Teacher    string  `json:"teacher"     binding:"max=150"`
	Room       string  `json:"room"        binding:"max=50"`
	LessonType string  `json:"lesson_type" binding:"max=50"`
	CustomTime bool    `json:"custom_time"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
}

// UpdateScheduleEntryRequest is the partial entry update payload.
type UpdateScheduleEntryRequest struct {
	Day        *string `json:"day"`
	Slot       *int    `json:"slot"        binding:"omitempty,min=0,max=5"`
	Subject    *string `json:"subject"     binding:"omitempty,min=1,max=200"`
	Teacher    *string `json:"teacher"     binding:"omitempty,max=150"`
	Room       *string `json:"room"        binding:"omitempty,max=50"`
	LessonType *string `json:"lesson_type" binding:"omitempty,max=50"`
	CustomTime *bool   `json:"custom_time"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	Skipped    *bool   `json:"skipped"`
}

// ScheduleEntryResponse is the entry view. StartTime/EndTime are always
// filled: either the entry's custom times or the canonical slot times.
type ScheduleEntryResponse struct {
	ID         string `json:"id"`
	WeekID     string `json:"week_id"`
	Day        string `json:"day"`
	Slot       int    `json:"slot"`
	Subject    string `json:"subject"`
	Teacher    string `json:"teacher,omitempty"`
	Room       string `json:"room,omitempty"`
	LessonType string `json:"lesson_type,omitempty"`
	CustomTime bool   `json:"custom_time"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Skipped    bool   `json:"skipped"`
}

// WeekScheduleResponse groups a week's entries by canonical day.
type WeekScheduleResponse struct {
	Week *WeekResponse                      `json:"week"`
	Days map[string][]ScheduleEntryResponse `json:"days"`
}
