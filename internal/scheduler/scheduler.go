package scheduler

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/maxpulse/habit-coach/internal/domain"
	"github.com/maxpulse/habit-coach/internal/repository"
	"github.com/maxpulse/habit-coach/internal/service"
)

// Sweep runs the nightly week-boundary check: every user whose current
// tracking week has fully elapsed gets their assessment conducted ahead
// of time, so the progression decision is ready when they next open the
// app.
type Sweep struct {
	scheduler    *gocron.Scheduler
	progressRepo repository.ProgressRepository
	assessments  service.AssessmentService
}

// NewSweep creates the nightly sweep.
func NewSweep(progressRepo repository.ProgressRepository, assessments service.AssessmentService) *Sweep {
	return &Sweep{
		scheduler:    gocron.NewScheduler(time.UTC),
		progressRepo: progressRepo,
		assessments:  assessments,
	}
}

// Start schedules the sweep at the given local-UTC time (HH:MM) and
// begins running it asynchronously.
func (s *Sweep) Start(at string) error {
	_, err := s.scheduler.Every(1).Day().At(at).Do(func() {
		if err := s.Run(context.Background()); err != nil {
			log.Printf("week-boundary sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.scheduler.StartAsync()
	log.Printf("Week-boundary sweep scheduled daily at %s UTC", at)
	return nil
}

// Stop halts the scheduler.
func (s *Sweep) Stop() {
	s.scheduler.Stop()
}

// Run performs one sweep pass over all enrolled users.
func (s *Sweep) Run(ctx context.Context) error {
	rows, err := s.progressRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	assessed := 0
	for i := range rows {
		_, weekEnd := rows[i].WeekRange(rows[i].CurrentWeek)
		if !now.After(weekEnd.AddDate(0, 0, 1)) {
			continue
		}

		_, err := s.assessments.Conduct(ctx, rows[i].UserID, rows[i].CurrentWeek, false)
		if err != nil {
			// Users who never logged anything have nothing to assess.
			if errors.Is(err, domain.ErrNoMetrics) {
				continue
			}
			log.Printf("sweep: assessment for user %s week %d failed: %v", rows[i].UserID, rows[i].CurrentWeek, err)
			continue
		}
		assessed++
	}

	if assessed > 0 {
		log.Printf("Week-boundary sweep assessed %d users", assessed)
	}
	return nil
}
