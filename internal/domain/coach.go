package domain

// CoachContext is the aggregated weekly picture handed to the LLM when
// generating a coaching narrative. Conclusions must be grounded in this
// data only.
type CoachContext struct {
	WeekNumber     int      `json:"week_number"`
	PhaseNumber    int      `json:"phase_number"`
	OverallPct     float64  `json:"overall_pct"`
	Grade          Grade    `json:"grade"`
	ConsistentDays int      `json:"consistent_days"`
	TrackedDays    int      `json:"tracked_days"`
	Strongest      Pillar   `json:"strongest_pillar"`
	Weakest        Pillar   `json:"weakest_pillar"`
	CurrentStreak  int      `json:"current_streak"`
	LongestStreak  int      `json:"longest_streak"`
	WeekendRatio   float64  `json:"weekend_ratio"`
	Recommendation Decision `json:"recommendation"`
	Confidence     int      `json:"confidence"`
	Reasoning      []string `json:"reasoning"`
	RiskFactors    []string `json:"risk_factors"`
	Opportunities  []string `json:"opportunities"`
	IsHistorical   bool     `json:"is_historical"`
}

// CoachNarrative is the LLM-generated weekly coaching output.
type CoachNarrative struct {
	// 2-3 sentence plain-language summary of the week
	Summary string `json:"summary"`
	// Specific things that went well
	Wins []string `json:"wins"`
	// Concrete behavioral focus areas for the coming week
	FocusAreas []string `json:"focus_areas"`
}

// CoachResponse is the response body for the coach endpoint.
type CoachResponse struct {
	WeekNumber int            `json:"week_number"`
	Narrative  CoachNarrative `json:"narrative"`
}
