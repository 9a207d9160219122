package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"uni-portal/backend/internal/model"
)

// ExamRepository is the exam data-access interface.
type ExamRepository interface {
	Create(ctx context.Context, exam *model.Exam) error
	GetByID(ctx context.Context, id string) (*model.Exam, error)
	// List returns all exams ordered by date ascending.
	List(ctx context.Context) ([]model.Exam, error)
	// ListUpcoming returns exams on or after the given day.
	ListUpcoming(ctx context.Context, from time.Time) ([]model.Exam, error)
	Update(ctx context.Context, exam *model.Exam) error
	Delete(ctx context.Context, id string) error
}

type examRepo struct {
	db *gorm.DB
}

// NewExamRepo creates the GORM-backed ExamRepository.
func NewExamRepo(db *gorm.DB) ExamRepository {
	return &examRepo{db: db}
}

func (r *examRepo) Create(ctx context.Context, exam *model.Exam) error {
	return r.db.WithContext(ctx).Create(exam).Error
}

func (r *examRepo) GetByID(ctx context.Context, id string) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.WithContext(ctx).
		Where("exam_id = ?", id).
		First(&exam).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepo) List(ctx context.Context) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&exams).Error
	return exams, err
}

func (r *examRepo) ListUpcoming(ctx context.Context, from time.Time) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.WithContext(ctx).
		Where("date >= ?", from.Format("2006-01-02")).
		Order("date ASC").
		Find(&exams).Error
	return exams, err
}

func (r *examRepo) Update(ctx context.Context, exam *model.Exam) error {
	return r.db.WithContext(ctx).Save(exam).Error
}

func (r *examRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("exam_id = ?", id).
		Delete(&model.Exam{}).Error
}
