package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
	"github.com/maxpulse/habit-coach/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AssessmentService orchestrates the end-of-week assessment: resolve the
// week's window, run the performance and consistency calculations, apply
// the progression policy, reconcile with the cached record, and persist
// the outcome.
type AssessmentService interface {
	// Conduct runs or replays the assessment for a week. A cached record
	// is returned as-is unless force is set. When the week has no data
	// yet, the latest prior completed assessment is returned with
	// IsHistorical set instead of failing.
	Conduct(ctx context.Context, userID uuid.UUID, week int, force bool) (*domain.AssessmentResult, error)
}

type assessmentService struct {
	metricRepo     repository.MetricRepository
	progressRepo   repository.ProgressRepository
	assessmentRepo repository.AssessmentRepository
	targetsRepo    repository.TargetsRepository
	performance    PerformanceService
	consistency    ConsistencyService
	recommendation RecommendationService
	scoreCache     *ScoreCache
	now            func() time.Time
}

// NewAssessmentService creates a new AssessmentService. The score cache
// is invalidated after every successful assessment write.
func NewAssessmentService(
	metricRepo repository.MetricRepository,
	progressRepo repository.ProgressRepository,
	assessmentRepo repository.AssessmentRepository,
	targetsRepo repository.TargetsRepository,
	performance PerformanceService,
	consistency ConsistencyService,
	recommendation RecommendationService,
	scoreCache *ScoreCache,
) AssessmentService {
	return &assessmentService{
		metricRepo:     metricRepo,
		progressRepo:   progressRepo,
		assessmentRepo: assessmentRepo,
		targetsRepo:    targetsRepo,
		performance:    performance,
		consistency:    consistency,
		recommendation: recommendation,
		scoreCache:     scoreCache,
		now:            time.Now,
	}
}

func (s *assessmentService) Conduct(ctx context.Context, userID uuid.UUID, week int, force bool) (*domain.AssessmentResult, error) {
	tracer := otel.Tracer("habit-coach-api/assessment")
	ctx, span := tracer.Start(ctx, "AssessmentService.Conduct",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("assessment.week", week),
			attribute.Bool("assessment.force", force),
		),
	)
	defer span.End()

	if week < 1 || week > domain.MaxProgramWeeks {
		return nil, domain.ErrInvalidInput
	}

	progress, err := s.progressRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Cached fast path. The reconstruction is lossy for per-day detail,
	// which a read-mostly caller does not need.
	if !force {
		cached, err := s.assessmentRepo.GetByWeek(ctx, userID, week)
		if err == nil {
			result := cached.Reconstruct()
			s.annotateSpan(span, result)
			return result, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	weekStart, weekEnd := progress.WeekRange(week)
	records, err := s.metricRepo.ListByDateRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return s.fallbackToPrior(ctx, userID, week, span)
	}

	perf, err := s.performance.BuildWeekly(week, weekStart, weekEnd, records)
	if err != nil {
		return nil, err
	}
	cons := s.consistency.Analyze(perf, records)

	targets, err := s.targetsRepo.ForWeek(ctx, userID, week)
	if err != nil {
		return nil, err
	}

	assess := s.recommendation.Recommend(perf, cons, targets, progress.ExtensionsUsed)

	assessedAt := s.now().UTC()
	record := domain.ProjectAssessmentRecord(userID, perf, cons, assess, targets, assessedAt)
	if err := s.assessmentRepo.Upsert(ctx, record); err != nil {
		// Persistence failure only costs the cache; the computed
		// assessment still goes back to the caller.
		log.Printf("warning: failed to persist assessment for user %s week %d: %v", userID, week, err)
	} else {
		s.scoreCache.Invalidate(userID)
	}

	result := &domain.AssessmentResult{
		WeekNumber:  week,
		Performance: perf,
		Consistency: cons,
		Assessment:  assess,
		Targets:     targets,
		SourceWeek:  week,
		AssessedAt:  assessedAt,
	}
	s.annotateSpan(span, result)
	return result, nil
}

// fallbackToPrior serves the latest prior completed assessment when the
// requested week has no logged data yet, flagged so callers can label
// the numbers as historical.
func (s *assessmentService) fallbackToPrior(ctx context.Context, userID uuid.UUID, week int, span trace.Span) (*domain.AssessmentResult, error) {
	prior, err := s.assessmentRepo.LatestBefore(ctx, userID, week)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoMetrics
		}
		return nil, err
	}

	result := prior.Reconstruct()
	result.WeekNumber = week
	result.SourceWeek = prior.WeekNumber
	result.IsHistorical = true
	result.FromCache = false
	s.annotateSpan(span, result)
	return result, nil
}

func (s *assessmentService) annotateSpan(span trace.Span, result *domain.AssessmentResult) {
	span.SetAttributes(
		attribute.String("assessment.recommendation", string(result.Assessment.Recommendation)),
		attribute.Int("assessment.confidence", result.Assessment.Confidence),
		attribute.Bool("assessment.historical", result.IsHistorical),
		attribute.Bool("assessment.from_cache", result.FromCache),
	)
	if outJSON, err := json.Marshal(result.Assessment); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outJSON)))
	}
}
