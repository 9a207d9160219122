package repository

import (
	"context"

	"gorm.io/gorm"

	"uni-portal/backend/internal/model"
)

// HomeworkRepository is the homework data-access interface.
type HomeworkRepository interface {
	Create(ctx context.Context, hw *model.Homework) error
	GetByID(ctx context.Context, id string) (*model.Homework, error)
	// List returns homework, optionally filtered by week, newest first.
	List(ctx context.Context, weekID string) ([]model.Homework, error)
	Update(ctx context.Context, hw *model.Homework) error
	Delete(ctx context.Context, id string) error
}

type homeworkRepo struct {
	db *gorm.DB
}

// NewHomeworkRepo creates the GORM-backed HomeworkRepository.
func NewHomeworkRepo(db *gorm.DB) HomeworkRepository {
	return &homeworkRepo{db: db}
}

func (r *homeworkRepo) Create(ctx context.Context, hw *model.Homework) error {
	return r.db.WithContext(ctx).Create(hw).Error
}

func (r *homeworkRepo) GetByID(ctx context.Context, id string) (*model.Homework, error) {
	var hw model.Homework
	err := r.db.WithContext(ctx).
		Where("homework_id = ?", id).
		First(&hw).Error
	if err != nil {
		return nil, err
	}
	return &hw, nil
}

func (r *homeworkRepo) List(ctx context.Context, weekID string) ([]model.Homework, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if weekID != "" {
		q = q.Where("week_id = ?", weekID)
	}
	var hws []model.Homework
	err := q.Find(&hws).Error
	return hws, err
}

func (r *homeworkRepo) Update(ctx context.Context, hw *model.Homework) error {
	return r.db.WithContext(ctx).Save(hw).Error
}

func (r *homeworkRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("homework_id = ?", id).
		Delete(&model.Homework{}).Error
}
