package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User         UserRepository
	Week         WeekRepository
	Schedule     ScheduleRepository
	Homework     HomeworkRepository
	Exam         ExamRepository
	Note         NoteRepository
	Announcement AnnouncementRepository
	Staff        StaffRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Week:         NewWeekRepo(db),
		Schedule:     NewScheduleRepo(db),
		Homework:     NewHomeworkRepo(db),
		Exam:         NewExamRepo(db),
		Note:         NewNoteRepo(db),
		Announcement: NewAnnouncementRepo(db),
		Staff:        NewStaffRepo(db),
	}
}
