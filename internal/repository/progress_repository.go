package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	Create(ctx context.Context, progress *domain.ProgramProgress) error
	Get(ctx context.Context, userID uuid.UUID) (*domain.ProgramProgress, error)
	// UpdateFields applies a partial column update to the user's
	// progress row.
	UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]any) error
	// ListAll returns every progress row, for the week-boundary sweep.
	ListAll(ctx context.Context) ([]domain.ProgramProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(ctx context.Context, progress *domain.ProgramProgress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}

func (r *progressRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.ProgramProgress, error) {
	var progress domain.ProgramProgress
	err := r.db.WithContext(ctx).First(&progress, "user_id = ?", userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&domain.ProgramProgress{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *progressRepository) ListAll(ctx context.Context) ([]domain.ProgramProgress, error) {
	var rows []domain.ProgramProgress
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
