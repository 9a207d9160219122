package dto

// ── staff directory DTOs ──

// CreateStaffRequest is the staff record creation payload.
type CreateStaffRequest struct {
	Name     string `json:"name"     binding:"required,min=1,max=150"`
	Position string `json:"position" binding:"max=150"`
	Subjects string `json:"subjects" binding:"max=500"`
	Email    string `json:"email"    binding:"omitempty,email"`
	Room     string `json:"room"     binding:"max=50"`
}

// UpdateStaffRequest is the partial staff record update payload.
type UpdateStaffRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=1,max=150"`
	Position *string `json:"position" binding:"omitempty,max=150"`
	Subjects *string `json:"subjects" binding:"omitempty,max=500"`
	Email    *string `json:"email"    binding:"omitempty,email"`
	Room     *string `json:"room"     binding:"omitempty,max=50"`
}

// StaffResponse is the staff record view.
type StaffResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Subjects string `json:"subjects,omitempty"`
	Email    string `json:"email,omitempty"`
	Room     string `json:"room,omitempty"`
}
