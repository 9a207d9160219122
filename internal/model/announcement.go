package model

// Announcement is an admin-authored portal-wide message.
type Announcement struct {
	AnnouncementID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"announcement_id"`
	Title          string `gorm:"type:varchar(200);not null"                     json:"title"`
	Body           string `gorm:"type:text;not null;default:''"                  json:"body"`
	Pinned         bool   `gorm:"not null;default:false"                         json:"pinned"`
	BaseModel
}

func (Announcement) TableName() string { return "announcements" }
