package service

import (
	"math"
	"time"

	"github.com/maxpulse/habit-coach/internal/domain"
)

const (
	// ConsistencyThresholdPct marks a day as consistent when the
	// unweighted mean across all four pillars reaches it.
	ConsistencyThresholdPct = 80.0

	// TrendBandPct is the dead band around zero for trend classification.
	TrendBandPct = 5.0

	// MinTrendDays is the shortest sequence that can show a trend.
	MinTrendDays = 3

	// Grade thresholds: both the average and the consistency-day bar
	// must hold.
	MasteryAvgPct       = 80.0
	MasteryMinConsDays  = 5
	ProgressAvgPct      = 60.0
	ProgressMinConsDays = 3
)

// PerformanceService converts a week of daily metric records into
// per-pillar and overall achievement.
type PerformanceService interface {
	// BuildWeekly derives WeeklyPerformance from a date-ascending record
	// sequence. Returns ErrNoMetrics when the sequence is empty.
	BuildWeekly(week int, weekStart, weekEnd time.Time, records []domain.DailyMetricRecord) (*domain.WeeklyPerformance, error)
}

type performanceService struct{}

// NewPerformanceService creates a new PerformanceService.
func NewPerformanceService() PerformanceService {
	return &performanceService{}
}

func (s *performanceService) BuildWeekly(week int, weekStart, weekEnd time.Time, records []domain.DailyMetricRecord) (*domain.WeeklyPerformance, error) {
	if len(records) == 0 {
		return nil, domain.ErrNoMetrics
	}

	perf := &domain.WeeklyPerformance{
		WeekNumber:  week,
		PhaseNumber: domain.PhaseForWeek(week),
		WeekStart:   weekStart,
		WeekEnd:     weekEnd,
		TrackedDays: len(records),
		Pillars:     make([]domain.PillarPerformance, 0, len(domain.Pillars)),
	}

	// Per-pillar daily sequences, index-aligned with the record order.
	overallSum := 0.0
	for _, pillar := range domain.Pillars {
		pp := buildPillarPerformance(pillar, records)
		overallSum += pp.AveragePct
		perf.Pillars = append(perf.Pillars, pp)
	}
	perf.OverallPct = round1(overallSum / float64(len(domain.Pillars)))

	// Consistency days use the unweighted mean across pillars, not a
	// per-pillar bar.
	for day := range records {
		if dailyMeanPct(perf.Pillars, day) >= ConsistencyThresholdPct {
			perf.ConsistentDays++
		}
	}

	perf.Strongest, perf.Weakest = extremePillars(perf.Pillars)
	perf.Grade = gradeFor(perf.OverallPct, perf.ConsistentDays)

	return perf, nil
}

func buildPillarPerformance(pillar domain.Pillar, records []domain.DailyMetricRecord) domain.PillarPerformance {
	pp := domain.PillarPerformance{
		Pillar:      pillar,
		DailyValues: make([]float64, 0, len(records)),
		DailyDates:  make([]time.Time, 0, len(records)),
	}

	sum := 0.0
	for i := range records {
		pct := achievementPct(records[i].Actual(pillar), records[i].Goal(pillar))
		pp.DailyValues = append(pp.DailyValues, pct)
		pp.DailyDates = append(pp.DailyDates, records[i].Date)
		sum += pct
		if pct >= ConsistencyThresholdPct {
			pp.DaysAbove80++
		}
	}

	pp.AveragePct = round1(sum / float64(len(records)))
	pp.Trend = classifyTrend(pp.DailyValues)
	return pp
}

// achievementPct is the clamped daily percentage. The clamp keeps a
// single abnormal day (a pedometer glitch far above target) from
// skewing the weekly average.
func achievementPct(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	pct := actual / target * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// classifyTrend splits the sequence into first and second halves
// (odd-length sequences drop the middle element from both) and compares
// the half means against the 5-point band.
func classifyTrend(values []float64) domain.Trend {
	if len(values) < MinTrendDays {
		return domain.TrendStable
	}

	half := len(values) / 2
	first := mean(values[:half])
	second := mean(values[len(values)-half:])

	switch {
	case second-first > TrendBandPct:
		return domain.TrendImproving
	case first-second > TrendBandPct:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

// dailyMeanPct is the unweighted mean across pillars at one day index.
func dailyMeanPct(pillars []domain.PillarPerformance, day int) float64 {
	if len(pillars) == 0 {
		return 0
	}
	sum := 0.0
	counted := 0
	for i := range pillars {
		if day < len(pillars[i].DailyValues) {
			sum += pillars[i].DailyValues[day]
			counted++
		}
	}
	if counted == 0 {
		return 0
	}
	return sum / float64(counted)
}

// extremePillars picks the strongest and weakest pillars; ties resolve
// in pillar declaration order.
func extremePillars(pillars []domain.PillarPerformance) (domain.Pillar, domain.Pillar) {
	strongest := pillars[0]
	weakest := pillars[0]
	for _, pp := range pillars[1:] {
		if pp.AveragePct > strongest.AveragePct {
			strongest = pp
		}
		if pp.AveragePct < weakest.AveragePct {
			weakest = pp
		}
	}
	return strongest.Pillar, weakest.Pillar
}

func gradeFor(overallPct float64, consistentDays int) domain.Grade {
	if overallPct >= MasteryAvgPct && consistentDays >= MasteryMinConsDays {
		return domain.GradeMastery
	}
	if overallPct >= ProgressAvgPct && consistentDays >= ProgressMinConsDays {
		return domain.GradeProgress
	}
	return domain.GradeStruggle
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
