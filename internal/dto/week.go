package dto

// ── week module DTOs ──

// CreateWeekRequest is the manual week-creation payload.
// Dates are calendar days in "2006-01-02" form, both inclusive.
type CreateWeekRequest struct {
	Name      string `json:"name"       binding:"required,min=1,max=100"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"   binding:"required"`
}

// UpdateWeekRequest is the partial week update payload.
type UpdateWeekRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=1,max=100"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// WeekResponse is the week view. Status is always the derived lifecycle
// value (future | current | past).
type WeekResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
