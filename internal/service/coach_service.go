package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
	"github.com/maxpulse/habit-coach/internal/llm"
	"github.com/maxpulse/habit-coach/internal/repository"
)

// CoachService turns the current week's assessment into an LLM-written
// coaching narrative.
type CoachService interface {
	Narrative(ctx context.Context, userID uuid.UUID) (*domain.CoachResponse, error)
}

type coachService struct {
	assessmentService AssessmentService
	progressRepo      repository.ProgressRepository
	llmClient         llm.CoachLLM
}

// NewCoachService creates a new CoachService. llmClient may be nil when
// OpenAI is not configured; Narrative then fails with
// llm.ErrOpenAIUnavailable.
func NewCoachService(assessmentService AssessmentService, progressRepo repository.ProgressRepository, llmClient llm.CoachLLM) CoachService {
	return &coachService{
		assessmentService: assessmentService,
		progressRepo:      progressRepo,
		llmClient:         llmClient,
	}
}

func (s *coachService) Narrative(ctx context.Context, userID uuid.UUID) (*domain.CoachResponse, error) {
	if s.llmClient == nil {
		return nil, llm.ErrOpenAIUnavailable
	}

	progress, err := s.progressRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := s.assessmentService.Conduct(ctx, userID, progress.CurrentWeek, false)
	if err != nil {
		return nil, err
	}

	coachCtx := &domain.CoachContext{
		WeekNumber:     result.WeekNumber,
		PhaseNumber:    result.Performance.PhaseNumber,
		OverallPct:     result.Performance.OverallPct,
		Grade:          result.Performance.Grade,
		ConsistentDays: result.Performance.ConsistentDays,
		TrackedDays:    result.Performance.TrackedDays,
		Strongest:      result.Performance.Strongest,
		Weakest:        result.Performance.Weakest,
		CurrentStreak:  result.Consistency.CurrentStreak,
		LongestStreak:  result.Consistency.LongestStreak,
		WeekendRatio:   result.Consistency.WeekendRatio,
		Recommendation: result.Assessment.Recommendation,
		Confidence:     result.Assessment.Confidence,
		Reasoning:      result.Assessment.Reasoning,
		RiskFactors:    result.Assessment.RiskFactors,
		Opportunities:  result.Assessment.Opportunities,
		IsHistorical:   result.IsHistorical,
	}

	narrative, err := s.llmClient.GenerateNarrative(ctx, coachCtx)
	if err != nil {
		return nil, err
	}

	return &domain.CoachResponse{
		WeekNumber: result.WeekNumber,
		Narrative:  *narrative,
	}, nil
}
