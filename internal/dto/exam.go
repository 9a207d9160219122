package dto

// ── exam module DTOs ──

// CreateExamRequest is the exam creation payload.
type CreateExamRequest struct {
	Subject   string `json:"subject"    binding:"required,min=1,max=200"`
	ExamType  string `json:"exam_type"  binding:"max=50"`
	Date      string `json:"date"       binding:"required"` // "2006-01-02"
	StartTime string `json:"start_time" binding:"max=10"`
	Room      string `json:"room"       binding:"max=50"`
	Teacher   string `json:"teacher"    binding:"max=150"`
	Notes     string `json:"notes"`
}

// UpdateExamRequest is the partial exam update payload.
type UpdateExamRequest struct {
	Subject   *string `json:"subject"    binding:"omitempty,min=1,max=200"`
	ExamType  *string `json:"exam_type"  binding:"omitempty,max=50"`
	Date      *string `json:"date"`
	StartTime *string `json:"start_time" binding:"omitempty,max=10"`
	Room      *string `json:"room"       binding:"omitempty,max=50"`
	Teacher   *string `json:"teacher"    binding:"omitempty,max=150"`
	Notes     *string `json:"notes"`
}

// ExamResponse is the exam view.
type ExamResponse struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	ExamType  string `json:"exam_type,omitempty"`
	Date      string `json:"date"`
	StartTime string `json:"start_time,omitempty"`
	Room      string `json:"room,omitempty"`
	Teacher   string `json:"teacher,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
