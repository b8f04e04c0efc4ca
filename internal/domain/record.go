package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AssessmentSchemaVersion is stamped on every persisted assessment row.
// Bump it when the flattened projection changes shape so older rows can
// be reconstructed with explicit defaults.
const AssessmentSchemaVersion = 2

// WeeklyAssessmentRecord is the durable projection of one week's
// performance, consistency and recommendation, unique per (user, week).
// It doubles as a recomputation cache and as historical input to the
// cumulative score blender. Scalar columns are flattened; list-shaped
// detail lives in JSONB columns.
type WeeklyAssessmentRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_weekly_assessments_user_week" json:"user_id"`
	WeekNumber  int       `gorm:"not null;uniqueIndex:idx_weekly_assessments_user_week" json:"week_number"`
	PhaseNumber int       `gorm:"not null" json:"phase_number"`
	WeekStart   time.Time `gorm:"type:date;not null" json:"week_start"`
	WeekEnd     time.Time `gorm:"type:date;not null" json:"week_end"`

	OverallPct      float64 `gorm:"not null" json:"overall_pct"`
	Grade           Grade   `gorm:"type:varchar(16);not null" json:"grade"`
	ConsistentDays  int     `gorm:"not null" json:"consistent_days"`
	TrackedDays     int     `gorm:"not null" json:"tracked_days"`
	StrongestPillar Pillar  `gorm:"type:varchar(8);not null" json:"strongest_pillar"`
	WeakestPillar   Pillar  `gorm:"type:varchar(8);not null" json:"weakest_pillar"`

	ConsistencyRate float64 `gorm:"not null" json:"consistency_rate"`
	CurrentStreak   int     `gorm:"not null" json:"current_streak"`
	LongestStreak   int     `gorm:"not null" json:"longest_streak"`
	WeekendRatio    float64 `gorm:"not null;default:100" json:"weekend_ratio"`

	Recommendation Decision `gorm:"type:varchar(8);not null" json:"recommendation"`
	Confidence     int      `gorm:"type:smallint;not null" json:"confidence"`

	Pillars       datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"pillars"`
	Reasoning     datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"reasoning"`
	RiskFactors   datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"risk_factors"`
	Opportunities datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"opportunities"`
	Modifications datatypes.JSON `gorm:"type:jsonb" json:"modifications,omitempty"`
	Patterns      datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"patterns"`

	TargetSteps   int     `gorm:"not null" json:"target_steps"`
	TargetWaterOz float64 `gorm:"not null" json:"target_water_oz"`
	TargetSleepHr float64 `gorm:"not null" json:"target_sleep_hr"`

	SchemaVersion int       `gorm:"not null;default:1" json:"schema_version"`
	AssessedAt    time.Time `gorm:"not null" json:"assessed_at"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (WeeklyAssessmentRecord) TableName() string {
	return "weekly_assessments"
}

// ProjectAssessmentRecord flattens a computed week into its persisted
// form.
func ProjectAssessmentRecord(
	userID uuid.UUID,
	perf *WeeklyPerformance,
	cons *ConsistencyMetrics,
	assess *ProgressionAssessment,
	targets TargetSet,
	assessedAt time.Time,
) *WeeklyAssessmentRecord {
	rec := &WeeklyAssessmentRecord{
		UserID:          userID,
		WeekNumber:      perf.WeekNumber,
		PhaseNumber:     perf.PhaseNumber,
		WeekStart:       perf.WeekStart,
		WeekEnd:         perf.WeekEnd,
		OverallPct:      perf.OverallPct,
		Grade:           perf.Grade,
		ConsistentDays:  perf.ConsistentDays,
		TrackedDays:     perf.TrackedDays,
		StrongestPillar: perf.Strongest,
		WeakestPillar:   perf.Weakest,
		ConsistencyRate: cons.ConsistencyRate,
		CurrentStreak:   cons.CurrentStreak,
		LongestStreak:   cons.LongestStreak,
		WeekendRatio:    cons.WeekendRatio,
		Recommendation:  assess.Recommendation,
		Confidence:      assess.Confidence,
		TargetSteps:     targets.Steps,
		TargetWaterOz:   targets.WaterOz,
		TargetSleepHr:   targets.SleepHr,
		SchemaVersion:   AssessmentSchemaVersion,
		AssessedAt:      assessedAt,
	}

	rec.Pillars = mustJSON(perf.Pillars, "[]")
	rec.Reasoning = mustJSON(assess.Reasoning, "[]")
	rec.RiskFactors = mustJSON(assess.RiskFactors, "[]")
	rec.Opportunities = mustJSON(assess.Opportunities, "[]")
	rec.Patterns = mustJSON(cons.Patterns, "{}")
	if assess.Modifications != nil {
		rec.Modifications = mustJSON(assess.Modifications, "null")
	}
	return rec
}

func mustJSON(v any, fallback string) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON(fallback)
	}
	return datatypes.JSON(data)
}

// AssessmentResult is the unified record returned by the orchestrator.
// IsHistorical marks a fallback to the latest prior completed assessment
// when the requested week has no data yet; SourceWeek then names the
// week the numbers actually came from.
type AssessmentResult struct {
	WeekNumber   int                    `json:"week_number"`
	Performance  *WeeklyPerformance     `json:"performance"`
	Consistency  *ConsistencyMetrics    `json:"consistency"`
	Assessment   *ProgressionAssessment `json:"assessment"`
	Targets      TargetSet              `json:"targets"`
	IsHistorical bool                   `json:"is_historical"`
	SourceWeek   int                    `json:"source_week"`
	FromCache    bool                   `json:"from_cache"`
	AssessedAt   time.Time              `json:"assessed_at"`
}

// Reconstruct rebuilds the in-memory assessment shapes from the
// flattened row. The reconstruction is lossy for per-day trend and
// streak detail, which is acceptable on the cached read path. Every
// field has a defined default so rows written under an earlier schema
// version still reconstruct deterministically.
func (r *WeeklyAssessmentRecord) Reconstruct() *AssessmentResult {
	perf := &WeeklyPerformance{
		WeekNumber:     r.WeekNumber,
		PhaseNumber:    r.PhaseNumber,
		WeekStart:      r.WeekStart,
		WeekEnd:        r.WeekEnd,
		OverallPct:     r.OverallPct,
		ConsistentDays: r.ConsistentDays,
		TrackedDays:    r.TrackedDays,
		Strongest:      r.StrongestPillar,
		Weakest:        r.WeakestPillar,
		Grade:          r.Grade,
	}
	if perf.PhaseNumber == 0 {
		perf.PhaseNumber = PhaseForWeek(r.WeekNumber)
	}
	if perf.Grade == "" {
		perf.Grade = GradeStruggle
	}
	if perf.Strongest == "" {
		perf.Strongest = PillarSteps
	}
	if perf.Weakest == "" {
		perf.Weakest = PillarSteps
	}
	if len(r.Pillars) > 0 {
		var pillars []PillarPerformance
		if err := json.Unmarshal(r.Pillars, &pillars); err == nil {
			perf.Pillars = pillars
		}
	}

	cons := &ConsistencyMetrics{
		TotalDays:       r.TrackedDays,
		ConsistentDays:  r.ConsistentDays,
		ConsistencyRate: r.ConsistencyRate,
		CurrentStreak:   r.CurrentStreak,
		LongestStreak:   r.LongestStreak,
		WeekendRatio:    r.WeekendRatio,
	}
	if cons.WeekendRatio == 0 {
		// Rows predating the weekend ratio column default to neutral.
		cons.WeekendRatio = 100
	}
	if cons.LongestStreak < cons.CurrentStreak {
		cons.LongestStreak = cons.CurrentStreak
	}
	if len(r.Patterns) > 0 {
		var patterns PatternBuckets
		if err := json.Unmarshal(r.Patterns, &patterns); err == nil {
			cons.Patterns = patterns
		}
	}

	assess := &ProgressionAssessment{
		Recommendation: r.Recommendation,
		Confidence:     r.Confidence,
		Reasoning:      []string{},
		RiskFactors:    []string{},
		Opportunities:  []string{},
	}
	if assess.Recommendation == "" {
		assess.Recommendation = DecisionExtend
	}
	if len(r.Reasoning) > 0 {
		var reasoning []string
		if err := json.Unmarshal(r.Reasoning, &reasoning); err == nil && reasoning != nil {
			assess.Reasoning = reasoning
		}
	}
	if len(r.RiskFactors) > 0 {
		var risks []string
		if err := json.Unmarshal(r.RiskFactors, &risks); err == nil && risks != nil {
			assess.RiskFactors = risks
		}
	}
	if len(r.Opportunities) > 0 {
		var opps []string
		if err := json.Unmarshal(r.Opportunities, &opps); err == nil && opps != nil {
			assess.Opportunities = opps
		}
	}
	if len(r.Modifications) > 0 {
		var mods TargetModifications
		if err := json.Unmarshal(r.Modifications, &mods); err == nil && mods.FocusPillar != "" {
			assess.Modifications = &mods
		}
	}

	return &AssessmentResult{
		WeekNumber:  r.WeekNumber,
		Performance: perf,
		Consistency: cons,
		Assessment:  assess,
		Targets: TargetSet{
			Steps:   r.TargetSteps,
			WaterOz: r.TargetWaterOz,
			SleepHr: r.TargetSleepHr,
		},
		SourceWeek: r.WeekNumber,
		FromCache:  true,
		AssessedAt: r.AssessedAt,
	}
}
