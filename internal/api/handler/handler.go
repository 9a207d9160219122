package handler

import "uni-portal/backend/internal/service"

// Handler is the aggregate entry point for all HTTP handlers.
type Handler struct {
	Auth         *AuthHandler
	Week         *WeekHandler
	Schedule     *ScheduleHandler
	Import       *ImportHandler
	Homework     *HomeworkHandler
	Exam         *ExamHandler
	Note         *NoteHandler
	Announcement *AnnouncementHandler
	Staff        *StaffHandler
	Export       *ExportHandler
}

// NewHandler wires the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Week:         NewWeekHandler(svc.Week),
		Schedule:     NewScheduleHandler(svc.Schedule),
		Import:       NewImportHandler(svc.Import),
		Homework:     NewHomeworkHandler(svc.Homework),
		Exam:         NewExamHandler(svc.Exam),
		Note:         NewNoteHandler(svc.Note),
		Announcement: NewAnnouncementHandler(svc.Announcement),
		Staff:        NewStaffHandler(svc.Staff),
		Export:       NewExportHandler(svc.Export),
	}
}
