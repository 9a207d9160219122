package model

import "time"

// Exam is a scheduled examination or credit test.
type Exam struct {
	ExamID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"exam_id"`
	Subject   string    `gorm:"type:varchar(200);not null"                     json:"subject"`
	ExamType  string    `gorm:"type:varchar(50);not null;default:''"           json:"exam_type,omitempty"` // Экзамен | Зачет | Пересдача
	Date      time.Time `gorm:"type:date;not null"                             json:"date"`
	StartTime string    `gorm:"type:varchar(10);not null;default:''"           json:"start_time,omitempty"`
	Room      string    `gorm:"type:varchar(50);not null;default:''"           json:"room,omitempty"`
	Teacher   string    `gorm:"type:varchar(150);not null;default:''"          json:"teacher,omitempty"`
	Notes     string    `gorm:"type:text;not null;default:''"                  json:"notes,omitempty"`
	BaseModel
}

func (Exam) TableName() string { return "exams" }
