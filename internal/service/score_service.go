package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/repository"
)

// Historical-weight schedule: early weeks are not penalized for lacking
// history, later weeks reward sustained performance over any single
// week's number.
const (
	week2HistoricalWeight = 0.25
	week3HistoricalWeight = 0.40
)

// ScoreService blends historical weekly achievement with the current
// week's in-progress pillar percentages into a single 0-100 score.
type ScoreService interface {
	// Cumulative computes the rolling score. Pillar percentages are
	// fractions in [0,1], one per pillar. force bypasses the memo.
	Cumulative(ctx context.Context, userID uuid.UUID, currentPillarPcts []float64, force bool) (int, error)
}

type scoreService struct {
	assessmentRepo repository.AssessmentRepository
	progressRepo   repository.ProgressRepository
	cache          *ScoreCache
}

// NewScoreService creates a new ScoreService sharing the given memo
// cache with the assessment orchestrator.
func NewScoreService(assessmentRepo repository.AssessmentRepository, progressRepo repository.ProgressRepository, cache *ScoreCache) ScoreService {
	return &scoreService{
		assessmentRepo: assessmentRepo,
		progressRepo:   progressRepo,
		cache:          cache,
	}
}

func (s *scoreService) Cumulative(ctx context.Context, userID uuid.UUID, currentPillarPcts []float64, force bool) (int, error) {
	if !force {
		if score, ok := s.cache.Get(userID); ok {
			return score, nil
		}
	}

	progress, err := s.progressRepo.Get(ctx, userID)
	if err != nil {
		return 0, err
	}

	records, err := s.assessmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	// Only weeks before the current one count as history; the current
	// week is represented by the live pillar percentages.
	historySum := 0.0
	historyN := 0
	for i := range records {
		if records[i].WeekNumber < progress.CurrentWeek {
			historySum += records[i].OverallPct
			historyN++
		}
	}

	current := 0.0
	if len(currentPillarPcts) > 0 {
		sum := 0.0
		for _, pct := range currentPillarPcts {
			sum += clamp01(pct)
		}
		current = sum / float64(len(currentPillarPcts)) * 100
	}

	historicalWeight := historicalWeightFor(progress.CurrentWeek)
	if historyN == 0 {
		historicalWeight = 0
	}

	blended := current
	if historicalWeight > 0 {
		historical := historySum / float64(historyN)
		blended = historical*historicalWeight + current*(1-historicalWeight)
	}

	score := int(math.Round(blended))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	s.cache.Set(userID, score)
	return score, nil
}

func historicalWeightFor(week int) float64 {
	switch {
	case week <= 1:
		return 0
	case week == 2:
		return week2HistoricalWeight
	default:
		return week3HistoricalWeight
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
