package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
)

// weekStart is a Monday so weekday/weekend splits are predictable.
var weekStart = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

func weekEnd() time.Time {
	return weekStart.AddDate(0, 0, 6)
}

// dayRecord builds one day against the default targets (8000 steps,
// 80 oz, 8 hr, 3 check-ins).
func dayRecord(userID uuid.UUID, dayOffset int, steps int, waterOz, sleepHr float64, moodChecks int) domain.DailyMetricRecord {
	date := weekStart.AddDate(0, 0, dayOffset)
	return domain.DailyMetricRecord{
		ID:            uuid.New(),
		UserID:        userID,
		Date:          date,
		Steps:         steps,
		StepsGoal:     domain.DefaultTargets.Steps,
		WaterOz:       waterOz,
		WaterOzGoal:   domain.DefaultTargets.WaterOz,
		SleepHr:       sleepHr,
		SleepHrGoal:   domain.DefaultTargets.SleepHr,
		MoodChecks:    moodChecks,
		MoodChecksTgt: 3,
		LoggedAt:      date.Add(9 * time.Hour),
	}
}

func perfectDay(userID uuid.UUID, dayOffset int) domain.DailyMetricRecord {
	return dayRecord(userID, dayOffset, 8000, 80, 8, 3)
}

func weakDay(userID uuid.UUID, dayOffset int) domain.DailyMetricRecord {
	return dayRecord(userID, dayOffset, 2000, 20, 2, 0)
}

func TestPerformanceService_BuildWeekly_NoMetrics(t *testing.T) {
	svc := NewPerformanceService()

	_, err := svc.BuildWeekly(1, weekStart, weekEnd(), nil)
	if !errors.Is(err, domain.ErrNoMetrics) {
		t.Errorf("BuildWeekly() error = %v, want ErrNoMetrics", err)
	}
}

func TestPerformanceService_BuildWeekly_PerfectWeek(t *testing.T) {
	svc := NewPerformanceService()
	userID := uuid.New()

	records := make([]domain.DailyMetricRecord, 7)
	for i := range records {
		records[i] = perfectDay(userID, i)
	}

	perf, err := svc.BuildWeekly(3, weekStart, weekEnd(), records)
	if err != nil {
		t.Fatalf("BuildWeekly() error = %v", err)
	}

	if perf.OverallPct != 100 {
		t.Errorf("OverallPct = %v, want 100", perf.OverallPct)
	}
	if perf.ConsistentDays != 7 {
		t.Errorf("ConsistentDays = %d, want 7", perf.ConsistentDays)
	}
	if perf.TrackedDays != 7 {
		t.Errorf("TrackedDays = %d, want 7", perf.TrackedDays)
	}
	if perf.Grade != domain.GradeMastery {
		t.Errorf("Grade = %s, want mastery", perf.Grade)
	}
	if perf.PhaseNumber != 1 {
		t.Errorf("PhaseNumber = %d, want 1", perf.PhaseNumber)
	}
	for _, pp := range perf.Pillars {
		if pp.DaysAbove80 != 7 {
			t.Errorf("pillar %s DaysAbove80 = %d, want 7", pp.Pillar, pp.DaysAbove80)
		}
		if len(pp.DailyValues) != 7 || len(pp.DailyDates) != 7 {
			t.Errorf("pillar %s daily sequences have %d/%d entries, want 7/7",
				pp.Pillar, len(pp.DailyValues), len(pp.DailyDates))
		}
	}
}

func TestPerformanceService_AchievementClamping(t *testing.T) {
	svc := NewPerformanceService()
	userID := uuid.New()

	// A pedometer glitch far above target must not push the pillar
	// average past 100.
	records := []domain.DailyMetricRecord{
		dayRecord(userID, 0, 50000, 80, 8, 3),
	}

	perf, err := svc.BuildWeekly(1, weekStart, weekEnd(), records)
	if err != nil {
		t.Fatalf("BuildWeekly() error = %v", err)
	}

	steps := perf.PillarByName(domain.PillarSteps)
	if steps.AveragePct != 100 {
		t.Errorf("steps AveragePct = %v, want 100 (clamped)", steps.AveragePct)
	}
}

func TestPerformanceService_ZeroTarget(t *testing.T) {
	svc := NewPerformanceService()
	userID := uuid.New()

	record := dayRecord(userID, 0, 8000, 80, 8, 3)
	record.StepsGoal = 0

	perf, err := svc.BuildWeekly(1, weekStart, weekEnd(), []domain.DailyMetricRecord{record})
	if err != nil {
		t.Fatalf("BuildWeekly() error = %v", err)
	}

	steps := perf.PillarByName(domain.PillarSteps)
	if steps.AveragePct != 0 {
		t.Errorf("steps AveragePct = %v, want 0 for zero target", steps.AveragePct)
	}
}

func TestPerformanceService_OverallIsPillarMean(t *testing.T) {
	svc := NewPerformanceService()
	userID := uuid.New()

	// Uneven pillars: steps 50%, water 100%, sleep 75%, mood 100%.
	records := make([]domain.DailyMetricRecord, 7)
	for i := range records {
		records[i] = dayRecord(userID, i, 4000, 80, 6, 3)
	}

	perf, err := svc.BuildWeekly(1, weekStart, weekEnd(), records)
	if err != nil {
		t.Fatalf("BuildWeekly() error = %v", err)
	}

	sum := 0.0
	for _, pp := range perf.Pillars {
		sum += pp.AveragePct
	}
	want := round1(sum / 4)
	if perf.OverallPct != want {
		t.Errorf("OverallPct = %v, want pillar mean %v", perf.OverallPct, want)
	}
	if perf.OverallPct != 81.3 {
		t.Errorf("OverallPct = %v, want 81.3", perf.OverallPct)
	}
}

func TestPerformanceService_ConsistentDaysUseDailyMean(t *testing.T) {
	svc := NewPerformanceService()
	userID := uuid.New()

	// Four strong days, three weak days. Only the strong days clear the
	// 80% daily-mean bar.
	records := []domain.DailyMetricRecord{
		perfectDay(userID, 0),
		perfectDay(userID, 1),
		weakDay(userID, 2),
		perfectDay(userID, 3),
		weakDay(userID, 4),
		perfectDay(userID, 5),
		weakDay(userID, 6),
	}

	perf, err := svc.BuildWeekly(1, weekStart, weekEnd(), records)
	if err != nil {
		t.Fatalf("BuildWeekly() error = %v", err)
	}

	if perf.ConsistentDays != 4 {
		t.Errorf("ConsistentDays = %d, want 4", perf.ConsistentDays)
	}
	if perf.ConsistentDays > perf.TrackedDays {
		t.Errorf("ConsistentDays %d exceeds TrackedDays %d", perf.ConsistentDays, perf.TrackedDays)
	}
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   domain.Trend
	}{
		{
			name:   "too short for a trend",
			values: []float64{10, 90},
			want:   domain.TrendStable,
		},
		{
			name:   "improving halves",
			values: []float64{50, 50, 50, 90, 90, 90},
			want:   domain.TrendImproving,
		},
		{
			name:   "declining halves",
			values: []float64{90, 90, 90, 50, 50, 50},
			want:   domain.TrendDeclining,
		},
		{
			name:   "within the dead band",
			values: []float64{80, 80, 80, 83, 83, 83},
			want:   domain.TrendStable,
		},
		{
			name:   "odd length drops the middle day",
			values: []float64{50, 50, 50, 0, 90, 90, 90},
			want:   domain.TrendImproving,
		},
		{
			name:   "exactly at the band edge is stable",
			values: []float64{80, 80, 80, 85, 85, 85},
			want:   domain.TrendStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyTrend(tt.values); got != tt.want {
				t.Errorf("classifyTrend() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		name           string
		overallPct     float64
		consistentDays int
		want           domain.Grade
	}{
		{"mastery at the joint", 80, 5, domain.GradeMastery},
		{"high average, too few consistent days", 95, 4, domain.GradeProgress},
		{"many consistent days, average just short", 79.9, 7, domain.GradeProgress},
		{"progress at the joint", 60, 3, domain.GradeProgress},
		{"progress average, too few days", 60, 2, domain.GradeStruggle},
		{"below progress average", 59.9, 6, domain.GradeStruggle},
		{"bottom", 10, 0, domain.GradeStruggle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gradeFor(tt.overallPct, tt.consistentDays); got != tt.want {
				t.Errorf("gradeFor(%v, %d) = %s, want %s", tt.overallPct, tt.consistentDays, got, tt.want)
			}
		})
	}
}

func TestPerformanceService_ExtremePillarTieBreak(t *testing.T) {
	svc := NewPerformanceService()
	userID := uuid.New()

	// All pillars at 100%: ties resolve in declaration order, so STEPS
	// is both strongest and weakest.
	records := []domain.DailyMetricRecord{perfectDay(userID, 0)}

	perf, err := svc.BuildWeekly(1, weekStart, weekEnd(), records)
	if err != nil {
		t.Fatalf("BuildWeekly() error = %v", err)
	}

	if perf.Strongest != domain.PillarSteps {
		t.Errorf("Strongest = %s, want STEPS on tie", perf.Strongest)
	}
	if perf.Weakest != domain.PillarSteps {
		t.Errorf("Weakest = %s, want STEPS on tie", perf.Weakest)
	}
}

func TestPerformanceService_WeakestPillarIdentified(t *testing.T) {
	svc := NewPerformanceService()
	userID := uuid.New()

	// Sleep lags every day.
	records := make([]domain.DailyMetricRecord, 7)
	for i := range records {
		records[i] = dayRecord(userID, i, 8000, 80, 3, 3)
	}

	perf, err := svc.BuildWeekly(1, weekStart, weekEnd(), records)
	if err != nil {
		t.Fatalf("BuildWeekly() error = %v", err)
	}

	if perf.Weakest != domain.PillarSleep {
		t.Errorf("Weakest = %s, want SLEEP", perf.Weakest)
	}
	if perf.Strongest == domain.PillarSleep {
		t.Errorf("Strongest must not be the lagging pillar")
	}
}
