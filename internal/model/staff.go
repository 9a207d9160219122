package model

// Staff is one teacher record in the staff directory.
type Staff struct {
	StaffID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"staff_id"`
	Name     string `gorm:"type:varchar(150);not null"                     json:"name"`
	Position string `gorm:"type:varchar(150);not null;default:''"          json:"position,omitempty"`
	Subjects string `gorm:"type:varchar(500);not null;default:''"          json:"subjects,omitempty"` // comma-separated
	Email    string `gorm:"type:varchar(255);not null;default:''"          json:"email,omitempty"`
	Room     string `gorm:"type:varchar(50);not null;default:''"           json:"room,omitempty"`
	BaseModel
}

func (Staff) TableName() string { return "staff" }
