package domain

// Decision is a weekly progression decision.
// @Description Progression decision: ADVANCE to next week, EXTEND the current week, or RESET to the previous week.
type Decision string

const (
	DecisionAdvance Decision = "ADVANCE"
	DecisionExtend  Decision = "EXTEND"
	DecisionReset   Decision = "RESET"
)

// TargetSet is the per-pillar numeric goals in force for a week. Mood
// check-in cadence is fixed and never target-modified.
type TargetSet struct {
	Steps   int     `json:"steps" example:"8000"`
	WaterOz float64 `json:"water_oz" example:"80"`
	SleepHr float64 `json:"sleep_hr" example:"8"`
}

// Absolute safety floors and maximum reductions for softened targets.
const (
	StepsFloor   = 3000
	WaterOzFloor = 30.0
	SleepHrFloor = 5.0

	MaxStepsReduction = 0.40
	MaxWaterReduction = 0.40
	MaxSleepReduction = 0.25
)

// TargetModifications softens a single pillar's target for an extended
// week. At most one of Steps/WaterOz/SleepHr is set.
type TargetModifications struct {
	FocusPillar Pillar   `json:"focus_pillar"`
	Reason      string   `json:"reason"`
	Steps       *int     `json:"steps,omitempty"`
	WaterOz     *float64 `json:"water_oz,omitempty"`
	SleepHr     *float64 `json:"sleep_hr,omitempty"`
}

// Apply overlays the modifications on a base target set.
func (m *TargetModifications) Apply(base TargetSet) TargetSet {
	out := base
	if m.Steps != nil {
		out.Steps = *m.Steps
	}
	if m.WaterOz != nil {
		out.WaterOz = *m.WaterOz
	}
	if m.SleepHr != nil {
		out.SleepHr = *m.SleepHr
	}
	return out
}

// Validate checks the modified targets against the safety floors and the
// maximum allowed reduction from the baseline set.
func (m *TargetModifications) Validate(base TargetSet) error {
	if m.Steps != nil {
		if *m.Steps < StepsFloor {
			return ErrTargetBelowFloor
		}
		if base.Steps > 0 && float64(*m.Steps) < float64(base.Steps)*(1-MaxStepsReduction) {
			return ErrTargetBelowFloor
		}
	}
	if m.WaterOz != nil {
		if *m.WaterOz < WaterOzFloor {
			return ErrTargetBelowFloor
		}
		if base.WaterOz > 0 && *m.WaterOz < base.WaterOz*(1-MaxWaterReduction) {
			return ErrTargetBelowFloor
		}
	}
	if m.SleepHr != nil {
		if *m.SleepHr < SleepHrFloor {
			return ErrTargetBelowFloor
		}
		if base.SleepHr > 0 && *m.SleepHr < base.SleepHr*(1-MaxSleepReduction) {
			return ErrTargetBelowFloor
		}
	}
	return nil
}

// ProgressionAssessment is the recommendation produced at the end of a
// tracked week. Deterministic for identical performance/consistency
// inputs.
type ProgressionAssessment struct {
	Recommendation Decision             `json:"recommendation"`
	Confidence     int                  `json:"confidence"`
	Reasoning      []string             `json:"reasoning"`
	Modifications  *TargetModifications `json:"modifications,omitempty"`
	RiskFactors    []string             `json:"risk_factors"`
	Opportunities  []string             `json:"opportunities"`
}
