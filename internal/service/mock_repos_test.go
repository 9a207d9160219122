package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"uni-portal/backend/internal/model"
)

// ── Mock WeekRepository ──

type mockWeekRepo struct {
	weeks map[string]*model.Week
	seq   int

	createErr       error
	listErr         error
	updateStatusErr error
}

func newMockWeekRepo() *mockWeekRepo {
	return &mockWeekRepo{weeks: make(map[string]*model.Week)}
}

func (m *mockWeekRepo) Create(_ context.Context, week *model.Week) error {
	if m.createErr != nil {
		return m.createErr
	}
	if week.WeekID == "" {
		m.seq++
		week.WeekID = fmt.Sprintf("week-%03d", m.seq)
	}
	cp := *week
	m.weeks[week.WeekID] = &cp
	return nil
}

func (m *mockWeekRepo) GetByID(_ context.Context, id string) (*model.Week, error) {
	if w, ok := m.weeks[id]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWeekRepo) List(_ context.Context) ([]model.Week, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []model.Week
	for _, w := range m.weeks {
		result = append(result, *w)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartDate.Before(result[j].StartDate)
	})
	return result, nil
}

func (m *mockWeekRepo) Update(_ context.Context, week *model.Week) error {
	cp := *week
	m.weeks[week.WeekID] = &cp
	return nil
}

func (m *mockWeekRepo) UpdateStatus(_ context.Context, id, status string) error {
	if m.updateStatusErr != nil {
		return m.updateStatusErr
	}
	w, ok := m.weeks[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	w.Status = status
	return nil
}

func (m *mockWeekRepo) Delete(_ context.Context, id string) error {
	delete(m.weeks, id)
	return nil
}

// ── Mock ScheduleRepository ──

type mockScheduleRepo struct {
	entries map[string]*model.ScheduleEntry
	seq     int

	// createErrOn fails Create for entries with this subject
	createErrOn string
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{entries: make(map[string]*model.ScheduleEntry)}
}

func (m *mockScheduleRepo) Create(_ context.Context, entry *model.ScheduleEntry) error {
	if m.createErrOn != "" && entry.Subject == m.createErrOn {
		return fmt.Errorf("insert failed for %s", entry.Subject)
	}
	if entry.EntryID == "" {
		m.seq++
		entry.EntryID = fmt.Sprintf("entry-%03d", m.seq)
	}
	cp := *entry
	m.entries[entry.EntryID] = &cp
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id string) (*model.ScheduleEntry, error) {
	if e, ok := m.entries[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) ListByWeek(_ context.Context, weekID string) ([]model.ScheduleEntry, error) {
	var result []model.ScheduleEntry
	for _, e := range m.entries {
		if e.WeekID == weekID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Slot < result[j].Slot
	})
	return result, nil
}

func (m *mockScheduleRepo) Update(_ context.Context, entry *model.ScheduleEntry) error {
	cp := *entry
	m.entries[entry.EntryID] = &cp
	return nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id string) error {
	delete(m.entries, id)
	return nil
}

func (m *mockScheduleRepo) ExistsActive(_ context.Context, weekID, day string, slot int) (bool, error) {
	for _, e := range m.entries {
		if e.WeekID == weekID && e.Day == day && e.Slot == slot && !e.Skipped {
			return true, nil
		}
	}
	return false, nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%03d", m.seq)
	}
	cp := *user
	m.users[user.UserID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	cp := *user
	m.users[user.UserID] = &cp
	return nil
}

// ── Mock HomeworkRepository ──

type mockHomeworkRepo struct {
	homeworks map[string]*model.Homework
	seq       int
}

func newMockHomeworkRepo() *mockHomeworkRepo {
	return &mockHomeworkRepo{homeworks: make(map[string]*model.Homework)}
}

func (m *mockHomeworkRepo) Create(_ context.Context, hw *model.Homework) error {
	if hw.HomeworkID == "" {
		m.seq++
		hw.HomeworkID = fmt.Sprintf("hw-%03d", m.seq)
	}
	cp := *hw
	m.homeworks[hw.HomeworkID] = &cp
	return nil
}

func (m *mockHomeworkRepo) GetByID(_ context.Context, id string) (*model.Homework, error) {
	if hw, ok := m.homeworks[id]; ok {
		cp := *hw
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHomeworkRepo) List(_ context.Context, weekID string) ([]model.Homework, error) {
	var result []model.Homework
	for _, hw := range m.homeworks {
		if weekID != "" && (hw.WeekID == nil || *hw.WeekID != weekID) {
			continue
		}
		result = append(result, *hw)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].HomeworkID < result[j].HomeworkID })
	return result, nil
}

func (m *mockHomeworkRepo) Update(_ context.Context, hw *model.Homework) error {
	cp := *hw
	m.homeworks[hw.HomeworkID] = &cp
	return nil
}

func (m *mockHomeworkRepo) Delete(_ context.Context, id string) error {
	delete(m.homeworks, id)
	return nil
}

// ── Mock ExamRepository ──

type mockExamRepo struct {
	exams map[string]*model.Exam
	seq   int
}

func newMockExamRepo() *mockExamRepo {
	return &mockExamRepo{exams: make(map[string]*model.Exam)}
}

func (m *mockExamRepo) Create(_ context.Context, exam *model.Exam) error {
	if exam.ExamID == "" {
		m.seq++
		exam.ExamID = fmt.Sprintf("exam-%03d", m.seq)
	}
	cp := *exam
	m.exams[exam.ExamID] = &cp
	return nil
}

func (m *mockExamRepo) GetByID(_ context.Context, id string) (*model.Exam, error) {
	if e, ok := m.exams[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockExamRepo) List(_ context.Context) ([]model.Exam, error) {
	var result []model.Exam
	for _, e := range m.exams {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *mockExamRepo) ListUpcoming(_ context.Context, from time.Time) ([]model.Exam, error) {
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	var result []model.Exam
	for _, e := range m.exams {
		if e.Date.Before(day) {
			continue
		}
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *mockExamRepo) Update(_ context.Context, exam *model.Exam) error {
	cp := *exam
	m.exams[exam.ExamID] = &cp
	return nil
}

func (m *mockExamRepo) Delete(_ context.Context, id string) error {
	delete(m.exams, id)
	return nil
}

// ── Mock NoteRepository ──

type mockNoteRepo struct {
	notes map[string]*model.Note
	seq   int
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{notes: make(map[string]*model.Note)}
}

func (m *mockNoteRepo) Create(_ context.Context, note *model.Note) error {
	if note.NoteID == "" {
		m.seq++
		note.NoteID = fmt.Sprintf("note-%03d", m.seq)
	}
	cp := *note
	m.notes[note.NoteID] = &cp
	return nil
}

func (m *mockNoteRepo) GetByID(_ context.Context, id string) (*model.Note, error) {
	if n, ok := m.notes[id]; ok {
		cp := *n
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNoteRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Note, error) {
	var result []model.Note
	for _, n := range m.notes {
		if n.OwnerID == ownerID {
			result = append(result, *n)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].NoteID < result[j].NoteID })
	return result, nil
}

func (m *mockNoteRepo) Update(_ context.Context, note *model.Note) error {
	cp := *note
	m.notes[note.NoteID] = &cp
	return nil
}

func (m *mockNoteRepo) Delete(_ context.Context, id string) error {
	delete(m.notes, id)
	return nil
}

// ── Mock AnnouncementRepository ──

type mockAnnouncementRepo struct {
	announcements map[string]*model.Announcement
	seq           int
}

func newMockAnnouncementRepo() *mockAnnouncementRepo {
	return &mockAnnouncementRepo{announcements: make(map[string]*model.Announcement)}
}

func (m *mockAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	if a.AnnouncementID == "" {
		m.seq++
		a.AnnouncementID = fmt.Sprintf("ann-%03d", m.seq)
	}
	cp := *a
	m.announcements[a.AnnouncementID] = &cp
	return nil
}

func (m *mockAnnouncementRepo) GetByID(_ context.Context, id string) (*model.Announcement, error) {
	if a, ok := m.announcements[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) List(_ context.Context) ([]model.Announcement, error) {
	var result []model.Announcement
	for _, a := range m.announcements {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Pinned != result[j].Pinned {
			return result[i].Pinned
		}
		return result[i].AnnouncementID < result[j].AnnouncementID
	})
	return result, nil
}

func (m *mockAnnouncementRepo) Update(_ context.Context, a *model.Announcement) error {
	cp := *a
	m.announcements[a.AnnouncementID] = &cp
	return nil
}

func (m *mockAnnouncementRepo) Delete(_ context.Context, id string) error {
	delete(m.announcements, id)
	return nil
}

// ── Mock StaffRepository ──

type mockStaffRepo struct {
	records map[string]*model.Staff
	seq     int
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{records: make(map[string]*model.Staff)}
}

func (m *mockStaffRepo) Create(_ context.Context, s *model.Staff) error {
	if s.StaffID == "" {
		m.seq++
		s.StaffID = fmt.Sprintf("staff-%03d", m.seq)
	}
	cp := *s
	m.records[s.StaffID] = &cp
	return nil
}

func (m *mockStaffRepo) GetByID(_ context.Context, id string) (*model.Staff, error) {
	if s, ok := m.records[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) List(_ context.Context) ([]model.Staff, error) {
	var result []model.Staff
	for _, s := range m.records {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockStaffRepo) Update(_ context.Context, s *model.Staff) error {
	cp := *s
	m.records[s.StaffID] = &cp
	return nil
}

func (m *mockStaffRepo) Delete(_ context.Context, id string) error {
	delete(m.records, id)
	return nil
}
