package dto

// ── announcement module DTOs ──

// CreateAnnouncementRequest is the announcement creation payload.
type CreateAnnouncementRequest struct {
	Title  string `json:"title" binding:"required,min=1,max=200"`
	Body   string `json:"body"`
	Pinned bool   `json:"pinned"`
}

// UpdateAnnouncementRequest is the partial announcement update payload.
type UpdateAnnouncementRequest struct {
	Title  *string `json:"title" binding:"omitempty,min=1,max=200"`
	Body   *string `json:"body"`
	Pinned *bool   `json:"pinned"`
}

// AnnouncementResponse is the announcement view.
type AnnouncementResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Pinned    bool   `json:"pinned"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
