package model

// Note is a private markdown note owned by one user.
// Content is stored as raw markdown; rendering happens in the frontend.
type Note struct {
	NoteID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"note_id"`
	OwnerID string `gorm:"type:uuid;not null;index"                       json:"owner_id"`
	Title   string `gorm:"type:varchar(200);not null"                     json:"title"`
	Content string `gorm:"type:text;not null;default:''"                  json:"content"`
	BaseModel
}

func (Note) TableName() string { return "notes" }
