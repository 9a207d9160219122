package repository

import (
	"context"

	"gorm.io/gorm"

	"uni-portal/backend/internal/model"
)

// ScheduleRepository is the schedule-entry data-access interface.
type ScheduleRepository interface {
	Create(ctx context.Context, entry *model.ScheduleEntry) error
	GetByID(ctx context.Context, id string) (*model.ScheduleEntry, error)
	// ListByWeek returns a week's entries ordered by slot within each day.
	ListByWeek(ctx context.Context, weekID string) ([]model.ScheduleEntry, error)
	Update(ctx context.Context, entry *model.ScheduleEntry) error
	Delete(ctx context.Context, id string) error
	// ExistsActive reports whether a non-skipped entry already occupies
	// the (week, day, slot) cell.
	ExistsActive(ctx context.Context, weekID, day string, slot int) (bool, error)
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo creates the GORM-backed ScheduleRepository.
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, entry *model.ScheduleEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *scheduleRepo) GetByID(ctx context.Context, id string) (*model.ScheduleEntry, error) {
	var entry model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("entry_id = ?", id).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleRepo) ListByWeek(ctx context.Context, weekID string) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("week_id = ?", weekID).
		Order("slot ASC, start_time ASC").
		Find(&entries).Error
	return entries, err
}

func (r *scheduleRepo) Update(ctx context.Context, entry *model.ScheduleEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *scheduleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("entry_id = ?", id).
		Delete(&model.ScheduleEntry{}).Error
}

func (r *scheduleRepo) ExistsActive(ctx context.Context, weekID, day string, slot int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ScheduleEntry{}).
		Where("week_id = ? AND day = ? AND slot = ? AND skipped = ?", weekID, day, slot, false).
		Count(&count).Error
	return count > 0, err
}
