package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
)

// MockAssessmentService is a mock implementation of service.AssessmentService
type MockAssessmentService struct {
	conductFunc func(ctx context.Context, userID uuid.UUID, week int, force bool) (*domain.AssessmentResult, error)
}

func (m *MockAssessmentService) Conduct(ctx context.Context, userID uuid.UUID, week int, force bool) (*domain.AssessmentResult, error) {
	if m.conductFunc != nil {
		return m.conductFunc(ctx, userID, week, force)
	}
	return &domain.AssessmentResult{
		WeekNumber: week,
		Performance: &domain.WeeklyPerformance{
			WeekNumber: week,
			OverallPct: 85,
		},
		Consistency: &domain.ConsistencyMetrics{},
		Assessment: &domain.ProgressionAssessment{
			Recommendation: domain.DecisionAdvance,
			Confidence:     95,
			Reasoning:      []string{"strong week"},
		},
		SourceWeek: week,
	}, nil
}

// MockProgressionService is a mock implementation of service.ProgressionService
type MockProgressionService struct {
	executeFunc func(ctx context.Context, userID uuid.UUID, req *domain.ExecuteDecisionRequest) (*domain.DecisionResult, error)
}

func (m *MockProgressionService) Execute(ctx context.Context, userID uuid.UUID, req *domain.ExecuteDecisionRequest) (*domain.DecisionResult, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, userID, req)
	}
	return &domain.DecisionResult{
		Success:  true,
		Decision: req.Decision,
		NewWeek:  req.WeekNumber + 1,
		NewPhase: domain.PhaseForWeek(req.WeekNumber + 1),
	}, nil
}

// MockScoreService is a mock implementation of service.ScoreService
type MockScoreService struct {
	cumulativeFunc func(ctx context.Context, userID uuid.UUID, currentPillarPcts []float64, force bool) (int, error)
}

func (m *MockScoreService) Cumulative(ctx context.Context, userID uuid.UUID, currentPillarPcts []float64, force bool) (int, error) {
	if m.cumulativeFunc != nil {
		return m.cumulativeFunc(ctx, userID, currentPillarPcts, force)
	}
	return 78, nil
}

// withURLParams injects chi route parameters into the request context.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
