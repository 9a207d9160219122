package model

import "time"

// Week lifecycle statuses. Status is derived from the week's date range
// against "today" and persisted as a denormalized cache; it is never
// authored directly.
const (
	WeekStatusFuture  = "future"
	WeekStatusCurrent = "current"
	WeekStatusPast    = "past"
)

// Week is a named, bounded calendar interval scoping a schedule,
// homework set and exam set. Both boundary dates are inclusive days.
type Week struct {
	WeekID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"week_id"`
	Name      string    `gorm:"type:varchar(100);not null"                     json:"name"`
	StartDate time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null"                             json:"end_date"`
	Status    string    `gorm:"type:varchar(20);not null;default:'future'"     json:"status"`
	BaseModel
}

func (Week) TableName() string { return "weeks" }
