package service

import (
	"time"

	"go.uber.org/zap"

	"uni-portal/backend/internal/repository"
	"uni-portal/backend/pkg/jwt"
	"uni-portal/backend/pkg/redis"
)

// Service is the aggregate entry point for all business services.
type Service struct {
	Auth         AuthService
	Week         WeekService
	Schedule     ScheduleService
	Import       ImportService
	Homework     HomeworkService
	Exam         ExamService
	Note         NoteService
	Announcement AnnouncementService
	Staff        StaffService
	Export       ExportService
}

// NewService wires the service aggregate. rdb may be nil when Redis is
// unavailable; auth then runs without server-side token revocation.
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	weeks := NewWeekService(repo, logger, time.Now)

	return &Service{
		Auth:         NewAuthService(repo, jwtMgr, rdb, logger),
		Week:         weeks,
		Schedule:     NewScheduleService(repo, logger),
		Import:       NewImportService(repo, logger, time.Now),
		Homework:     NewHomeworkService(repo, weeks, logger),
		Exam:         NewExamService(repo, logger, time.Now),
		Note:         NewNoteService(repo, logger),
		Announcement: NewAnnouncementService(repo, logger),
		Staff:        NewStaffService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
