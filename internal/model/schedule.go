package model

// ScheduleEntry is one timetabled lesson occurrence inside a week.
//
// When CustomTime is false the explicit StartTime/EndTime must be NULL and
// the effective clock times come from the fixed slot table (service layer).
// Imported entries always carry CustomTime=true with the source's literal
// time strings preserved.
type ScheduleEntry struct {
	EntryID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"entry_id"`
	WeekID     string  `gorm:"type:uuid;not null;index"                       json:"week_id"`
	Day        string  `gorm:"type:varchar(20);not null"                      json:"day"`  // canonical full day name
	Slot       int     `gorm:"type:smallint;not null;default:0"               json:"slot"` // 0-5, 0 and 5 are extra periods
	Subject    string  `gorm:"type:varchar(200);not null"                     json:"subject"`
	Teacher    string  `gorm:"type:varchar(150);not null;default:''"          json:"teacher,omitempty"`
	Room       string  `gorm:"type:varchar(50);not null;default:''"           json:"room,omitempty"`
	LessonType string  `gorm:"type:varchar(50);not null;default:''"           json:"lesson_type,omitempty"`
	CustomTime bool    `gorm:"not null;default:false"                         json:"custom_time"`
	StartTime  *string `gorm:"type:varchar(10)"                               json:"start_time,omitempty"`
	EndTime    *string `gorm:"type:varchar(10)"                               json:"end_time,omitempty"`
	Skipped    bool    `gorm:"not null;default:false"                         json:"skipped"`
	BaseModel

	Week *Week `gorm:"foreignKey:WeekID;references:WeekID" json:"week,omitempty"`
}

func (ScheduleEntry) TableName() string { return "schedule_entries" }
