package model

import "time"

// Homework is one assignment, optionally bound to a week.
type Homework struct {
	HomeworkID  string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"homework_id"`
	WeekID      *string    `gorm:"type:uuid;index"                                json:"week_id,omitempty"`
	Subject     string     `gorm:"type:varchar(200);not null"                     json:"subject"`
	Description string     `gorm:"type:text;not null;default:''"                  json:"description"`
	DueDate     *time.Time `gorm:"type:date"                                      json:"due_date,omitempty"`
	Done        bool       `gorm:"not null;default:false"                         json:"done"`
	BaseModel

	Week *Week `gorm:"foreignKey:WeekID;references:WeekID" json:"week,omitempty"`
}

func (Homework) TableName() string { return "homeworks" }
