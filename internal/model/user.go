package model

// User roles.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User is a portal account.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Name         string `gorm:"type:varchar(150);not null"                     json:"name"`
	Group        string `gorm:"column:group;type:varchar(50);not null;default:''" json:"group,omitempty"`
	Role         string `gorm:"type:varchar(20);not null;default:'student'"    json:"role"`
	BaseModel
}

func (User) TableName() string { return "users" }
