package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pillar identifies one of the four tracked health dimensions.
// @Description Health pillar: STEPS, WATER, SLEEP or MOOD.
type Pillar string

const (
	PillarSteps Pillar = "STEPS"
	PillarWater Pillar = "WATER"
	PillarSleep Pillar = "SLEEP"
	PillarMood  Pillar = "MOOD"
)

// Pillars lists the pillars in declaration order. Tie-breaks between
// pillar averages resolve in this order.
var Pillars = []Pillar{PillarSteps, PillarWater, PillarSleep, PillarMood}

// DailyMetricRecord holds one calendar day of tracked actuals and the
// targets that were in force that day. Written by the tracking client;
// the progression engine only reads it.
type DailyMetricRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_metrics_user_date" json:"user_id"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_metrics_user_date" json:"date"`
	Steps         int       `gorm:"not null;default:0" json:"steps"`
	StepsGoal     int       `gorm:"not null;default:0" json:"steps_goal"`
	WaterOz       float64   `gorm:"not null;default:0" json:"water_oz"`
	WaterOzGoal   float64   `gorm:"not null;default:0" json:"water_oz_goal"`
	SleepHr       float64   `gorm:"not null;default:0" json:"sleep_hr"`
	SleepHrGoal   float64   `gorm:"not null;default:0" json:"sleep_hr_goal"`
	MoodChecks    int       `gorm:"not null;default:0" json:"mood_checks"`
	MoodChecksTgt int       `gorm:"column:mood_checks_goal;not null;default:0" json:"mood_checks_goal"`
	LoggedAt      time.Time `gorm:"autoCreateTime" json:"logged_at"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DailyMetricRecord) TableName() string {
	return "daily_metrics"
}

// Actual returns the tracked value for a pillar.
func (d *DailyMetricRecord) Actual(p Pillar) float64 {
	switch p {
	case PillarSteps:
		return float64(d.Steps)
	case PillarWater:
		return d.WaterOz
	case PillarSleep:
		return d.SleepHr
	case PillarMood:
		return float64(d.MoodChecks)
	}
	return 0
}

// Goal returns the target value for a pillar.
func (d *DailyMetricRecord) Goal(p Pillar) float64 {
	switch p {
	case PillarSteps:
		return float64(d.StepsGoal)
	case PillarWater:
		return d.WaterOzGoal
	case PillarSleep:
		return d.SleepHrGoal
	case PillarMood:
		return float64(d.MoodChecksTgt)
	}
	return 0
}

// UpsertMetricRequest is the request body for logging a day of metrics.
// @Description Daily actuals for all four pillars. Same-day re-submission updates the row.
type UpsertMetricRequest struct {
	// Calendar date being logged, in YYYY-MM-DD
	Date string `json:"date" validate:"required,datetime=2006-01-02" example:"2024-03-11"`
	// Steps walked
	Steps int `json:"steps" validate:"min=0" example:"8421"`
	// Water drunk in ounces
	WaterOz float64 `json:"water_oz" validate:"min=0" example:"64"`
	// Hours slept
	SleepHr float64 `json:"sleep_hr" validate:"min=0,max=24" example:"7.5"`
	// Mood check-ins completed
	MoodChecks int `json:"mood_checks" validate:"min=0,max=10" example:"3"`
}

// MetricResponse is the response body for daily metric endpoints.
type MetricResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Date       string    `json:"date" example:"2024-03-11"`
	Steps      int       `json:"steps"`
	StepsGoal  int       `json:"steps_goal"`
	WaterOz    float64   `json:"water_oz"`
	WaterGoal  float64   `json:"water_oz_goal"`
	SleepHr    float64   `json:"sleep_hr"`
	SleepGoal  float64   `json:"sleep_hr_goal"`
	MoodChecks int       `json:"mood_checks"`
	MoodGoal   int       `json:"mood_checks_goal"`
	CreatedAt  time.Time `json:"created_at"`
}

func (d *DailyMetricRecord) ToResponse() MetricResponse {
	return MetricResponse{
		ID:         d.ID,
		UserID:     d.UserID,
		Date:       d.Date.Format("2006-01-02"),
		Steps:      d.Steps,
		StepsGoal:  d.StepsGoal,
		WaterOz:    d.WaterOz,
		WaterGoal:  d.WaterOzGoal,
		SleepHr:    d.SleepHr,
		SleepGoal:  d.SleepHrGoal,
		MoodChecks: d.MoodChecks,
		MoodGoal:   d.MoodChecksTgt,
		CreatedAt:  d.CreatedAt,
	}
}

// MetricListResponse is the response body for listing daily metrics.
type MetricListResponse struct {
	Data       []MetricResponse   `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
type PaginationResponse struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// MetricFilter contains filter parameters for listing daily metrics.
type MetricFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
