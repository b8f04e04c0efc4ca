package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
	"github.com/maxpulse/habit-coach/internal/repository"
)

// UserService enrolls users into the program and reads their position.
type UserService interface {
	Enroll(ctx context.Context, req *domain.EnrollUserRequest) (*domain.UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UserResponse, error)
}

type userService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	targetsRepo  repository.TargetsRepository
	now          func() time.Time
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, progressRepo repository.ProgressRepository, targetsRepo repository.TargetsRepository) UserService {
	return &userService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		targetsRepo:  targetsRepo,
		now:          time.Now,
	}
}

// Enroll creates the user, their week-1 program position, and the week-1
// target row.
func (s *userService) Enroll(ctx context.Context, req *domain.EnrollUserRequest) (*domain.UserResponse, error) {
	startDate := s.now().UTC().Truncate(24 * time.Hour)
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		startDate = parsed
	}

	targets := domain.DefaultTargets
	if req.Targets != nil {
		targets = *req.Targets
	}

	user := &domain.User{Timezone: req.Timezone}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	progress := &domain.ProgramProgress{
		UserID:       user.ID,
		CurrentWeek:  1,
		CurrentPhase: 1,
		StartDate:    startDate,
	}
	if err := s.progressRepo.Create(ctx, progress); err != nil {
		return nil, err
	}

	if err := s.targetsRepo.Upsert(ctx, &domain.WeeklyTargets{
		UserID:     user.ID,
		WeekNumber: 1,
		Steps:      targets.Steps,
		WaterOz:    targets.WaterOz,
		SleepHr:    targets.SleepHr,
	}); err != nil {
		return nil, err
	}

	return &domain.UserResponse{
		ID:           user.ID,
		Timezone:     user.Timezone,
		CurrentWeek:  progress.CurrentWeek,
		CurrentPhase: progress.CurrentPhase,
		StartDate:    startDate.Format("2006-01-02"),
		CreatedAt:    user.CreatedAt,
	}, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	progress, err := s.progressRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.UserResponse{
		ID:           user.ID,
		Timezone:     user.Timezone,
		CurrentWeek:  progress.CurrentWeek,
		CurrentPhase: progress.CurrentPhase,
		StartDate:    progress.StartDate.Format("2006-01-02"),
		CreatedAt:    user.CreatedAt,
	}, nil
}
