package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
	"github.com/maxpulse/habit-coach/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MetricRepository interface {
	// Upsert inserts a day's metrics or updates the actuals when the
	// (user, date) row already exists (same-day re-logging).
	Upsert(ctx context.Context, record *domain.DailyMetricRecord) error
	// ListByDateRange returns records with date in [from, to], ordered
	// date ascending. This is the canonical sequence all derived weekly
	// computations are built from.
	ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyMetricRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.MetricFilter) ([]domain.DailyMetricRecord, error)
}

type metricRepository struct {
	db *gorm.DB
}

func NewMetricRepository(db *gorm.DB) MetricRepository {
	return &metricRepository{db: db}
}

func (r *metricRepository) Upsert(ctx context.Context, record *domain.DailyMetricRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"steps", "water_oz", "sleep_hr", "mood_checks", "logged_at",
		}),
	}).Create(record).Error
}

func (r *metricRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyMetricRecord, error) {
	var records []domain.DailyMetricRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *metricRepository) List(ctx context.Context, userID uuid.UUID, filter domain.MetricFilter) ([]domain.DailyMetricRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC")

	if filter.From != nil {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: rows strictly older than the cursor date,
			// or same date with a smaller id.
			query = query.Where(
				"(date < ?) OR (date = ? AND id < ?)",
				cursor.Date, cursor.Date, cursor.ID,
			)
		}
	}

	// Fetch one extra row to detect whether more pages exist.
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.DailyMetricRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
