package domain

// PatternBuckets is a simplified time-of-day distribution of when the
// user logged their metrics during the week.
type PatternBuckets struct {
	MorningLogs   int `json:"morning_logs"`
	AfternoonLogs int `json:"afternoon_logs"`
	EveningLogs   int `json:"evening_logs"`
}

// ConsistencyMetrics describes streaks and day-to-day regularity for one
// tracked week. Invariants: LongestStreak >= CurrentStreak and
// ConsistentDays <= TotalDays.
type ConsistencyMetrics struct {
	TotalDays       int            `json:"total_days"`
	ConsistentDays  int            `json:"consistent_days"`
	ConsistencyRate float64        `json:"consistency_rate"`
	CurrentStreak   int            `json:"current_streak"`
	LongestStreak   int            `json:"longest_streak"`
	// Mean weekend-day score as a percentage of the mean weekday score.
	// 100 when either group has no data.
	WeekendRatio float64        `json:"weekend_ratio"`
	Patterns     PatternBuckets `json:"patterns"`
}
