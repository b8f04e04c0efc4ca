package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Program shape: twelve 7-day weeks grouped into three 4-week phases.
const (
	MaxProgramWeeks = 12
	WeekLengthDays  = 7

	// MaxExtensionsPerWeek caps how often a single week can be extended.
	MaxExtensionsPerWeek = 5
	// ResetExtensionThreshold is the prior-extension count at which the
	// decision rule forces a reset instead of another extension.
	ResetExtensionThreshold = 3
)

// ProgramProgress is the single per-user program position row. Mutated
// only by the progression executor.
type ProgramProgress struct {
	UserID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	CurrentWeek     int            `gorm:"not null;default:1" json:"current_week"`
	CurrentPhase    int            `gorm:"not null;default:1" json:"current_phase"`
	StartDate       time.Time      `gorm:"type:date;not null" json:"start_date"`
	ExtensionsUsed  int            `gorm:"not null;default:0" json:"extensions_used"`
	DecisionHistory datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"decision_history"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ProgramProgress) TableName() string {
	return "program_progress"
}

// WeekRange returns the date window for a given program week relative to
// the user's start date.
func (p *ProgramProgress) WeekRange(week int) (time.Time, time.Time) {
	start := p.StartDate.AddDate(0, 0, (week-1)*WeekLengthDays)
	end := start.AddDate(0, 0, WeekLengthDays-1)
	return start, end
}

// DecisionHistoryEntry is one append-only log line of an executed
// progression decision.
type DecisionHistoryEntry struct {
	Week       int       `json:"week"`
	Decision   Decision  `json:"decision"`
	Note       string    `json:"note,omitempty"`
	ExecutedAt time.Time `json:"executed_at"`
}

// History decodes the decision history log. A corrupt or empty column
// decodes to an empty history rather than failing.
func (p *ProgramProgress) History() []DecisionHistoryEntry {
	var entries []DecisionHistoryEntry
	if len(p.DecisionHistory) == 0 {
		return entries
	}
	if err := json.Unmarshal(p.DecisionHistory, &entries); err != nil {
		return []DecisionHistoryEntry{}
	}
	return entries
}

// AppendHistory returns the history column with a new entry appended.
func (p *ProgramProgress) AppendHistory(entry DecisionHistoryEntry) datatypes.JSON {
	entries := append(p.History(), entry)
	data, err := json.Marshal(entries)
	if err != nil {
		return p.DecisionHistory
	}
	return datatypes.JSON(data)
}

// WeeklyTargets is the persisted target set for one (user, week).
type WeeklyTargets struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_weekly_targets_user_week" json:"user_id"`
	WeekNumber int       `gorm:"not null;uniqueIndex:idx_weekly_targets_user_week" json:"week_number"`
	Steps      int       `gorm:"not null" json:"steps"`
	WaterOz    float64   `gorm:"not null" json:"water_oz"`
	SleepHr    float64   `gorm:"not null" json:"sleep_hr"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (WeeklyTargets) TableName() string {
	return "weekly_targets"
}

// Set converts the row to its value form.
func (t *WeeklyTargets) Set() TargetSet {
	return TargetSet{Steps: t.Steps, WaterOz: t.WaterOz, SleepHr: t.SleepHr}
}

// ExecuteDecisionRequest is the request body for executing a progression
// decision.
// @Description Decision to execute against the user's current program week.
type ExecuteDecisionRequest struct {
	// Week the decision was computed against; must still be the current week
	WeekNumber int `json:"week_number" validate:"required,min=1" example:"3"`
	// Decision type
	Decision Decision `json:"decision" validate:"required,oneof=ADVANCE EXTEND RESET" example:"EXTEND"`
	// Optional softened targets, EXTEND only
	Modifications *TargetModifications `json:"modifications,omitempty"`
}

// DecisionResult is the outcome of an executed progression decision.
type DecisionResult struct {
	Success    bool      `json:"success"`
	Decision   Decision  `json:"decision"`
	NewWeek    int       `json:"new_week"`
	NewPhase   int       `json:"new_phase"`
	NewTargets TargetSet `json:"new_targets"`
	Message    string    `json:"message"`
}
