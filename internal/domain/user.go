package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// EnrollUserRequest is the request body for enrolling a user into the
// 90-day program.
type EnrollUserRequest struct {
	Timezone string `json:"timezone" validate:"required,timezone"`
	// Program start date in YYYY-MM-DD; defaults to today
	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	// Week-1 targets; defaults apply when omitted
	Targets *TargetSet `json:"targets,omitempty"`
}

// Default week-1 targets for new enrollments.
var DefaultTargets = TargetSet{Steps: 8000, WaterOz: 80, SleepHr: 8}

// UserResponse is the response body for user endpoints.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Timezone     string    `json:"timezone"`
	CurrentWeek  int       `json:"current_week"`
	CurrentPhase int       `json:"current_phase"`
	StartDate    string    `json:"start_date"`
	CreatedAt    time.Time `json:"created_at"`
}
