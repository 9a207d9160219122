package repository

import (
	"context"

	"gorm.io/gorm"

	"uni-portal/backend/internal/model"
)

// WeekRepository is the week data-access interface.
type WeekRepository interface {
	Create(ctx context.Context, week *model.Week) error
	GetByID(ctx context.Context, id string) (*model.Week, error)
	// List returns all weeks ordered by start date ascending.
	List(ctx context.Context) ([]model.Week, error)
	Update(ctx context.Context, week *model.Week) error
	// UpdateStatus persists only the derived lifecycle status column.
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type weekRepo struct {
	db *gorm.DB
}

// NewWeekRepo creates the GORM-backed WeekRepository.
func NewWeekRepo(db *gorm.DB) WeekRepository {
	return &weekRepo{db: db}
}

func (r *weekRepo) Create(ctx context.Context, week *model.Week) error {
	return r.db.WithContext(ctx).Create(week).Error
}

func (r *weekRepo) GetByID(ctx context.Context, id string) (*model.Week, error) {
	var week model.Week
	err := r.db.WithContext(ctx).
		Where("week_id = ?", id).
		First(&week).Error
	if err != nil {
		return nil, err
	}
	return &week, nil
}

func (r *weekRepo) List(ctx context.Context) ([]model.Week, error) {
	var weeks []model.Week
	err := r.db.WithContext(ctx).
		Order("start_date ASC").
		Find(&weeks).Error
	return weeks, err
}

func (r *weekRepo) Update(ctx context.Context, week *model.Week) error {
	return r.db.WithContext(ctx).Save(week).Error
}

func (r *weekRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Week{}).
		Where("week_id = ?", id).
		Update("status", status).Error
}

func (r *weekRepo) Delete(ctx context.Context, id string) error {
	// schedule entries cascade via FK
	return r.db.WithContext(ctx).
		Where("week_id = ?", id).
		Delete(&model.Week{}).Error
}
