package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TargetsRepository interface {
	// Upsert writes the target set for a (user, week), replacing any
	// existing row. Used on enrollment, on advance/reset, and when an
	// extension softens the active targets.
	Upsert(ctx context.Context, targets *domain.WeeklyTargets) error
	// ForWeek returns the target set for the given week. Weeks without
	// their own row inherit the closest earlier week's targets, falling
	// back to the program defaults.
	ForWeek(ctx context.Context, userID uuid.UUID, week int) (domain.TargetSet, error)
}

type targetsRepository struct {
	db *gorm.DB
}

func NewTargetsRepository(db *gorm.DB) TargetsRepository {
	return &targetsRepository{db: db}
}

func (r *targetsRepository) Upsert(ctx context.Context, targets *domain.WeeklyTargets) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "week_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"steps", "water_oz", "sleep_hr"}),
	}).Create(targets).Error
}

func (r *targetsRepository) ForWeek(ctx context.Context, userID uuid.UUID, week int) (domain.TargetSet, error) {
	var row domain.WeeklyTargets
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND week_number <= ?", userID, week).
		Order("week_number DESC").
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.DefaultTargets, nil
		}
		return domain.TargetSet{}, err
	}
	return row.Set(), nil
}
