package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
)

type mockProgressRepo struct {
	rows []domain.ProgramProgress
	err  error
}

func (m *mockProgressRepo) Create(ctx context.Context, progress *domain.ProgramProgress) error {
	return nil
}

func (m *mockProgressRepo) Get(ctx context.Context, userID uuid.UUID) (*domain.ProgramProgress, error) {
	return nil, domain.ErrNotFound
}

func (m *mockProgressRepo) UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]any) error {
	return nil
}

func (m *mockProgressRepo) ListAll(ctx context.Context) ([]domain.ProgramProgress, error) {
	return m.rows, m.err
}

type mockAssessments struct {
	conducted map[uuid.UUID]int
	errFor    map[uuid.UUID]error
}

func (m *mockAssessments) Conduct(ctx context.Context, userID uuid.UUID, week int, force bool) (*domain.AssessmentResult, error) {
	if err, ok := m.errFor[userID]; ok {
		return nil, err
	}
	if m.conducted == nil {
		m.conducted = make(map[uuid.UUID]int)
	}
	m.conducted[userID] = week
	return &domain.AssessmentResult{WeekNumber: week}, nil
}

func TestSweep_Run(t *testing.T) {
	now := time.Now().UTC()

	elapsed := uuid.New()   // week finished over a day ago
	inFlight := uuid.New()  // still mid-week
	noMetrics := uuid.New() // enrolled but never logged

	repo := &mockProgressRepo{rows: []domain.ProgramProgress{
		{UserID: elapsed, CurrentWeek: 1, StartDate: now.AddDate(0, 0, -10)},
		{UserID: inFlight, CurrentWeek: 1, StartDate: now.AddDate(0, 0, -2)},
		{UserID: noMetrics, CurrentWeek: 1, StartDate: now.AddDate(0, 0, -10)},
	}}
	assessments := &mockAssessments{
		errFor: map[uuid.UUID]error{noMetrics: domain.ErrNoMetrics},
	}

	sweep := NewSweep(repo, assessments)
	if err := sweep.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if week, ok := assessments.conducted[elapsed]; !ok || week != 1 {
		t.Errorf("elapsed user not assessed: %v", assessments.conducted)
	}
	if _, ok := assessments.conducted[inFlight]; ok {
		t.Error("mid-week user must not be assessed")
	}
	if _, ok := assessments.conducted[noMetrics]; ok {
		t.Error("user without metrics must be skipped, not assessed")
	}
}
