package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seededDays = 21

// Run seeds the database with sample users three weeks into the
// program. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.DailyMetricRecord{},
		&domain.ProgramProgress{},
		&domain.WeeklyTargets{},
		&domain.WeeklyAssessmentRecord{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
	}

	startDate := time.Now().UTC().AddDate(0, 0, -seededDays).Truncate(24 * time.Hour)

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}

		progress := domain.ProgramProgress{
			UserID:       user.ID,
			CurrentWeek:  3,
			CurrentPhase: 1,
			StartDate:    startDate,
		}
		if err := db.Where("user_id = ?", user.ID).FirstOrCreate(&progress).Error; err != nil {
			return fmt.Errorf("failed to create progress for %s: %w", user.ID, err)
		}

		targets := domain.WeeklyTargets{
			UserID:     user.ID,
			WeekNumber: 1,
			Steps:      domain.DefaultTargets.Steps,
			WaterOz:    domain.DefaultTargets.WaterOz,
			SleepHr:    domain.DefaultTargets.SleepHr,
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&targets).Error; err != nil {
			return fmt.Errorf("failed to create targets for %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedMetricsForUser(db, user, startDate, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedMetricsForUser(db *gorm.DB, user domain.User, startDate time.Time, rng *rand.Rand) error {
	for i := 0; i < seededDays; i++ {
		date := startDate.AddDate(0, 0, i)

		record := domain.DailyMetricRecord{
			UserID:        user.ID,
			Date:          date,
			Steps:         4000 + rng.Intn(7000),
			StepsGoal:     domain.DefaultTargets.Steps,
			WaterOz:       float64(40 + rng.Intn(55)),
			WaterOzGoal:   domain.DefaultTargets.WaterOz,
			SleepHr:       5.5 + rng.Float64()*3.5,
			SleepHrGoal:   domain.DefaultTargets.SleepHr,
			MoodChecks:    rng.Intn(4),
			MoodChecksTgt: 3,
			LoggedAt:      date.Add(time.Duration(8+rng.Intn(13)) * time.Hour),
		}

		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoNothing: true,
		}).Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create metric record: %w", err)
		}
	}
	return nil
}
