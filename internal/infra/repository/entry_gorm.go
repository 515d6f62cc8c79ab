package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/ojt-tracker/internal/domain/entry"
	"github.com/BruksfildServices01/ojt-tracker/internal/models"
)

type EntryGormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewEntryGormRepository(db *gorm.DB) *EntryGormRepository {
	return &EntryGormRepository{db: db, now: time.Now}
}

// --------------------------------------------------
// Entries
// --------------------------------------------------

func (r *EntryGormRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]models.TimeEntry, error) {

	entries := []models.TimeEntry{}
	if err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *EntryGormRepository) GetByID(
	ctx context.Context,
	id uint,
	ownerID string,
) (*models.TimeEntry, error) {

	var e models.TimeEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, ownerID).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EntryGormRepository) Create(
	ctx context.Context,
	e *models.TimeEntry,
) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EntryGormRepository) Update(
	ctx context.Context,
	id uint,
	ownerID string,
	e domain.Entry,
) error {

	var patch models.TimeEntry
	e.ApplyTo(&patch)

	res := r.db.WithContext(ctx).
		Model(&models.TimeEntry{}).
		Where("id = ? AND created_by = ?", id, ownerID).
		Updates(map[string]any{
			"date":               patch.Date,
			"morning_time_in":    patch.MorningTimeIn,
			"morning_time_out":   patch.MorningTimeOut,
			"afternoon_time_in":  patch.AfternoonTimeIn,
			"afternoon_time_out": patch.AfternoonTimeOut,
			"evening_time_in":    patch.EveningTimeIn,
			"evening_time_out":   patch.EveningTimeOut,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EntryGormRepository) Delete(
	ctx context.Context,
	id uint,
	ownerID string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, ownerID).
		Delete(&models.TimeEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Target hours
// --------------------------------------------------

func (r *EntryGormRepository) RequiredHours(
	ctx context.Context,
	ownerID string,
) (float64, error) {

	var s models.UserSettings
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return s.RequiredHours, nil
}

func (r *EntryGormRepository) SetRequiredHours(
	ctx context.Context,
	ownerID string,
	hours float64,
) error {

	s := models.UserSettings{
		UserID:        ownerID,
		RequiredHours: hours,
		UpdatedAt:     r.now(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"required_hours", "updated_at"}),
		}).
		Create(&s).Error
}

// Compile-time check
var _ domain.Repository = (*EntryGormRepository)(nil)
