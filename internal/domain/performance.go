package domain

import "time"

// Trend classifies the direction of a pillar's daily values over a week.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Grade is the overall weekly performance grade.
type Grade string

const (
	GradeMastery  Grade = "mastery"
	GradeProgress Grade = "progress"
	GradeStruggle Grade = "struggle"
)

// PillarPerformance is one pillar's derived weekly performance.
// DailyValues and DailyDates are index-aligned and date-ascending; both
// are built from the same canonical record sequence so the consistency
// analysis cannot desynchronize from the performance calculation.
type PillarPerformance struct {
	Pillar         Pillar      `json:"pillar"`
	AveragePct     float64     `json:"average_pct"`
	DaysAbove80    int         `json:"days_above_80"`
	Trend          Trend       `json:"trend"`
	DailyValues    []float64   `json:"daily_values"`
	DailyDates     []time.Time `json:"daily_dates"`
}

// WeeklyPerformance aggregates the four pillars for one tracked week.
// Invariant: OverallPct is the unweighted mean of the four pillar
// averages, and ConsistentDays <= TrackedDays.
type WeeklyPerformance struct {
	WeekNumber     int                 `json:"week_number"`
	PhaseNumber    int                 `json:"phase_number"`
	WeekStart      time.Time           `json:"week_start"`
	WeekEnd        time.Time           `json:"week_end"`
	OverallPct     float64             `json:"overall_pct"`
	ConsistentDays int                 `json:"consistent_days"`
	TrackedDays    int                 `json:"tracked_days"`
	Strongest      Pillar              `json:"strongest_pillar"`
	Weakest        Pillar              `json:"weakest_pillar"`
	Grade          Grade               `json:"grade"`
	Pillars        []PillarPerformance `json:"pillars"`
}

// PillarByName returns the performance entry for the given pillar, or nil.
func (w *WeeklyPerformance) PillarByName(p Pillar) *PillarPerformance {
	for i := range w.Pillars {
		if w.Pillars[i].Pillar == p {
			return &w.Pillars[i]
		}
	}
	return nil
}

// PhaseForWeek derives the program phase from a week number. Phases
// group four consecutive weeks.
func PhaseForWeek(week int) int {
	if week < 1 {
		return 1
	}
	return (week + 3) / 4
}
