package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssessmentRepository interface {
	// Upsert writes the assessment row, replacing any existing row for
	// the same (user, week).
	Upsert(ctx context.Context, record *domain.WeeklyAssessmentRecord) error
	GetByWeek(ctx context.Context, userID uuid.UUID, week int) (*domain.WeeklyAssessmentRecord, error)
	// LatestBefore returns the completed assessment with the largest
	// week number strictly below the given week, or ErrNotFound.
	LatestBefore(ctx context.Context, userID uuid.UUID, week int) (*domain.WeeklyAssessmentRecord, error)
	// ListByUser returns all assessment rows ordered by week ascending,
	// for the cumulative score blender.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WeeklyAssessmentRecord, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Upsert(ctx context.Context, record *domain.WeeklyAssessmentRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "week_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"phase_number", "week_start", "week_end",
			"overall_pct", "grade", "consistent_days", "tracked_days",
			"strongest_pillar", "weakest_pillar",
			"consistency_rate", "current_streak", "longest_streak", "weekend_ratio",
			"recommendation", "confidence",
			"pillars", "reasoning", "risk_factors", "opportunities", "modifications", "patterns",
			"target_steps", "target_water_oz", "target_sleep_hr",
			"schema_version", "assessed_at",
		}),
	}).Create(record).Error
}

func (r *assessmentRepository) GetByWeek(ctx context.Context, userID uuid.UUID, week int) (*domain.WeeklyAssessmentRecord, error) {
	var record domain.WeeklyAssessmentRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND week_number = ?", userID, week).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *assessmentRepository) LatestBefore(ctx context.Context, userID uuid.UUID, week int) (*domain.WeeklyAssessmentRecord, error) {
	var record domain.WeeklyAssessmentRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND week_number < ?", userID, week).
		Order("week_number DESC").
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *assessmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WeeklyAssessmentRecord, error) {
	var records []domain.WeeklyAssessmentRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("week_number ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
