package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
	"github.com/maxpulse/habit-coach/internal/repository"
	"github.com/maxpulse/habit-coach/pkg/pagination"
)

// MetricService records and lists daily metric rows on behalf of the
// tracking client. The progression engine itself only ever reads them.
type MetricService interface {
	// Log upserts one day of actuals, stamping the goals in force for
	// that day's program week.
	Log(ctx context.Context, userID uuid.UUID, req *domain.UpsertMetricRequest) (*domain.DailyMetricRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.MetricFilter) (*domain.MetricListResponse, error)
}

type metricService struct {
	metricRepo   repository.MetricRepository
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	targetsRepo  repository.TargetsRepository
}

// NewMetricService creates a new MetricService.
func NewMetricService(metricRepo repository.MetricRepository, userRepo repository.UserRepository, progressRepo repository.ProgressRepository, targetsRepo repository.TargetsRepository) MetricService {
	return &metricService{
		metricRepo:   metricRepo,
		userRepo:     userRepo,
		progressRepo: progressRepo,
		targetsRepo:  targetsRepo,
	}
}

// DefaultMoodChecksGoal is the fixed daily check-in cadence; mood is
// never target-modified.
const DefaultMoodChecksGoal = 3

func (s *metricService) Log(ctx context.Context, userID uuid.UUID, req *domain.UpsertMetricRequest) (*domain.DailyMetricRecord, error) {
	progress, err := s.progressRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	week := weekForDate(progress.StartDate, date)
	targets, err := s.targetsRepo.ForWeek(ctx, userID, week)
	if err != nil {
		return nil, err
	}

	record := &domain.DailyMetricRecord{
		UserID:        userID,
		Date:          date,
		Steps:         req.Steps,
		StepsGoal:     targets.Steps,
		WaterOz:       req.WaterOz,
		WaterOzGoal:   targets.WaterOz,
		SleepHr:       req.SleepHr,
		SleepHrGoal:   targets.SleepHr,
		MoodChecks:    req.MoodChecks,
		MoodChecksTgt: DefaultMoodChecksGoal,
		LoggedAt:      time.Now().UTC(),
	}

	if err := s.metricRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *metricService) List(ctx context.Context, userID uuid.UUID, filter domain.MetricFilter) (*domain.MetricListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	records, err := s.metricRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.MetricListResponse{
		Data: make([]domain.MetricResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i := range records {
		response.Data[i] = records[i].ToResponse()
	}

	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{ID: last.ID, Date: last.Date}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

// weekForDate maps a calendar date onto its program week, clamped to the
// program bounds.
func weekForDate(startDate, date time.Time) int {
	days := int(date.Sub(startDate).Hours() / 24)
	week := days/domain.WeekLengthDays + 1
	if week < 1 {
		return 1
	}
	if week > domain.MaxProgramWeeks {
		return domain.MaxProgramWeeks
	}
	return week
}
