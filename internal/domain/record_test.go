package domain

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func sampleWeek() (*WeeklyPerformance, *ConsistencyMetrics, *ProgressionAssessment, TargetSet) {
	perf := &WeeklyPerformance{
		WeekNumber:     3,
		PhaseNumber:    1,
		WeekStart:      time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC),
		WeekEnd:        time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		OverallPct:     72.5,
		ConsistentDays: 4,
		TrackedDays:    7,
		Strongest:      PillarWater,
		Weakest:        PillarSleep,
		Grade:          GradeProgress,
		Pillars: []PillarPerformance{
			{Pillar: PillarSteps, AveragePct: 75, Trend: TrendStable},
			{Pillar: PillarWater, AveragePct: 90, Trend: TrendImproving},
			{Pillar: PillarSleep, AveragePct: 45, Trend: TrendDeclining},
			{Pillar: PillarMood, AveragePct: 80, Trend: TrendStable},
		},
	}
	cons := &ConsistencyMetrics{
		TotalDays:       7,
		ConsistentDays:  4,
		ConsistencyRate: 57.1,
		CurrentStreak:   2,
		LongestStreak:   3,
		WeekendRatio:    85,
		Patterns:        PatternBuckets{MorningLogs: 5, EveningLogs: 2},
	}
	sleep := 6.8
	assess := &ProgressionAssessment{
		Recommendation: DecisionExtend,
		Confidence:     75,
		Reasoning:      []string{"between thresholds"},
		RiskFactors:    []string{"sleep declining"},
		Opportunities:  []string{"water improving"},
		Modifications: &TargetModifications{
			FocusPillar: PillarSleep,
			Reason:      "sleep at 45%",
			SleepHr:     &sleep,
		},
	}
	targets := TargetSet{Steps: 8000, WaterOz: 80, SleepHr: 8}
	return perf, cons, assess, targets
}

func TestProjectAndReconstruct(t *testing.T) {
	perf, cons, assess, targets := sampleWeek()
	userID := uuid.New()
	assessedAt := time.Date(2024, 4, 1, 2, 0, 0, 0, time.UTC)

	record := ProjectAssessmentRecord(userID, perf, cons, assess, targets, assessedAt)

	if record.SchemaVersion != AssessmentSchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", record.SchemaVersion, AssessmentSchemaVersion)
	}
	if record.WeekNumber != 3 || record.OverallPct != 72.5 {
		t.Errorf("scalar projection wrong: %+v", record)
	}

	result := record.Reconstruct()

	if !result.FromCache {
		t.Error("reconstructed result must be flagged FromCache")
	}
	if result.Performance.OverallPct != perf.OverallPct {
		t.Errorf("OverallPct = %v, want %v", result.Performance.OverallPct, perf.OverallPct)
	}
	if result.Performance.Grade != GradeProgress {
		t.Errorf("Grade = %s, want progress", result.Performance.Grade)
	}
	if len(result.Performance.Pillars) != 4 {
		t.Fatalf("pillars = %d, want 4", len(result.Performance.Pillars))
	}
	if result.Consistency.Patterns != cons.Patterns {
		t.Errorf("Patterns = %+v, want %+v", result.Consistency.Patterns, cons.Patterns)
	}
	if !reflect.DeepEqual(result.Assessment.Reasoning, assess.Reasoning) {
		t.Errorf("Reasoning = %v, want %v", result.Assessment.Reasoning, assess.Reasoning)
	}
	if result.Assessment.Modifications == nil || *result.Assessment.Modifications.SleepHr != 6.8 {
		t.Errorf("Modifications lost in the round trip: %+v", result.Assessment.Modifications)
	}
	if result.Targets != targets {
		t.Errorf("Targets = %+v, want %+v", result.Targets, targets)
	}
	if !result.AssessedAt.Equal(assessedAt) {
		t.Errorf("AssessedAt = %v, want %v", result.AssessedAt, assessedAt)
	}
}

// Rows written before the current schema carry empty enum columns and a
// zero weekend ratio; reconstruction must fill every field with a
// defined default.
func TestReconstructLegacyRowDefaults(t *testing.T) {
	record := &WeeklyAssessmentRecord{
		UserID:        uuid.New(),
		WeekNumber:    2,
		OverallPct:    55,
		CurrentStreak: 4,
		LongestStreak: 1,
		SchemaVersion: 1,
	}

	result := record.Reconstruct()

	if result.Performance.PhaseNumber != 1 {
		t.Errorf("PhaseNumber = %d, want derived 1", result.Performance.PhaseNumber)
	}
	if result.Performance.Grade != GradeStruggle {
		t.Errorf("Grade = %s, want struggle default", result.Performance.Grade)
	}
	if result.Performance.Strongest != PillarSteps || result.Performance.Weakest != PillarSteps {
		t.Errorf("pillar defaults not applied: %+v", result.Performance)
	}
	if result.Consistency.WeekendRatio != 100 {
		t.Errorf("WeekendRatio = %v, want neutral 100", result.Consistency.WeekendRatio)
	}
	if result.Consistency.LongestStreak != 4 {
		t.Errorf("LongestStreak = %d, want lifted to the current streak", result.Consistency.LongestStreak)
	}
	if result.Assessment.Recommendation != DecisionExtend {
		t.Errorf("Recommendation = %s, want EXTEND default", result.Assessment.Recommendation)
	}
	if result.Assessment.Reasoning == nil || result.Assessment.RiskFactors == nil || result.Assessment.Opportunities == nil {
		t.Error("list fields must reconstruct to empty slices, not nil")
	}
	if result.Assessment.Modifications != nil {
		t.Errorf("Modifications = %+v, want nil", result.Assessment.Modifications)
	}
}
