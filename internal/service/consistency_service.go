package service

import (
	"time"

	"github.com/maxpulse/habit-coach/internal/domain"
)

const (
	// Hour bounds for the simplified time-of-day logging buckets.
	morningEndHour   = 12
	afternoonEndHour = 18
)

// ConsistencyService derives streaks and regularity statistics from a
// week's pillar performance. The pillar daily sequences and the record
// sequence must come from the same date-ascending window.
type ConsistencyService interface {
	Analyze(perf *domain.WeeklyPerformance, records []domain.DailyMetricRecord) *domain.ConsistencyMetrics
}

type consistencyService struct{}

// NewConsistencyService creates a new ConsistencyService.
func NewConsistencyService() ConsistencyService {
	return &consistencyService{}
}

func (s *consistencyService) Analyze(perf *domain.WeeklyPerformance, records []domain.DailyMetricRecord) *domain.ConsistencyMetrics {
	metrics := &domain.ConsistencyMetrics{
		TotalDays:    perf.TrackedDays,
		WeekendRatio: 100,
	}
	if perf.TrackedDays == 0 {
		return metrics
	}

	flags := make([]bool, perf.TrackedDays)
	dailyMeans := make([]float64, perf.TrackedDays)
	for day := 0; day < perf.TrackedDays; day++ {
		dailyMeans[day] = dailyMeanPct(perf.Pillars, day)
		flags[day] = dailyMeans[day] >= ConsistencyThresholdPct
		if flags[day] {
			metrics.ConsistentDays++
		}
	}
	metrics.ConsistencyRate = round1(float64(metrics.ConsistentDays) / float64(metrics.TotalDays) * 100)

	metrics.CurrentStreak, metrics.LongestStreak = scanStreaks(flags)
	metrics.WeekendRatio = weekendRatio(records, dailyMeans)
	metrics.Patterns = bucketLoggingTimes(records)

	return metrics
}

// scanStreaks returns the run of consecutive true flags ending at the
// most recent day, and the maximal run anywhere in the week.
func scanStreaks(flags []bool) (current, longest int) {
	run := 0
	for _, ok := range flags {
		if ok {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	// The trailing run is the current streak; a false final day means 0
	// regardless of earlier runs.
	current = run
	return current, longest
}

// weekendRatio is mean weekend-day score over mean weekday score, as a
// percentage. Neutral 100 when either group has no data.
func weekendRatio(records []domain.DailyMetricRecord, dailyMeans []float64) float64 {
	var weekendSum, weekdaySum float64
	var weekendN, weekdayN int

	for i := range records {
		if i >= len(dailyMeans) {
			break
		}
		switch records[i].Date.Weekday() {
		case time.Saturday, time.Sunday:
			weekendSum += dailyMeans[i]
			weekendN++
		default:
			weekdaySum += dailyMeans[i]
			weekdayN++
		}
	}

	if weekendN == 0 || weekdayN == 0 {
		return 100
	}
	weekdayMean := weekdaySum / float64(weekdayN)
	if weekdayMean == 0 {
		return 100
	}
	return round1(weekendSum / float64(weekendN) / weekdayMean * 100)
}

func bucketLoggingTimes(records []domain.DailyMetricRecord) domain.PatternBuckets {
	var buckets domain.PatternBuckets
	for i := range records {
		hour := records[i].LoggedAt.Hour()
		switch {
		case hour < morningEndHour:
			buckets.MorningLogs++
		case hour < afternoonEndHour:
			buckets.AfternoonLogs++
		default:
			buckets.EveningLogs++
		}
	}
	return buckets
}
