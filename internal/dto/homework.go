package dto

// ── homework module DTOs ──

// CreateHomeworkRequest is the homework creation payload.
type CreateHomeworkRequest struct {
	WeekID      *string `json:"week_id"     binding:"omitempty,uuid"`
	Subject     string  `json:"subject"     binding:"required,min=1,max=200"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"` // "2006-01-02"
}

// UpdateHomeworkRequest is the partial homework update payload.
type UpdateHomeworkRequest struct {
	WeekID      *string `json:"week_id"     binding:"omitempty,uuid"`
	Subject     *string `json:"subject"     binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Done        *bool   `json:"done"`
}

// HomeworkResponse is the homework view.
type HomeworkResponse struct {
	ID          string `json:"id"`
	WeekID      string `json:"week_id,omitempty"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	DueDate     string `json:"due_date,omitempty"`
	Done        bool   `json:"done"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
