package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
	"github.com/maxpulse/habit-coach/internal/repository"
)

// ProgressionService executes a confirmed progression decision against
// the user's program-progress row. Each handler follows
// validate -> mutate -> record -> report, and a decision computed
// against a week that is no longer current is rejected rather than
// silently applied.
type ProgressionService interface {
	Execute(ctx context.Context, userID uuid.UUID, req *domain.ExecuteDecisionRequest) (*domain.DecisionResult, error)
}

type progressionService struct {
	progressRepo   repository.ProgressRepository
	targetsRepo    repository.TargetsRepository
	recommendation RecommendationService
	now            func() time.Time
}

// NewProgressionService creates a new ProgressionService.
func NewProgressionService(progressRepo repository.ProgressRepository, targetsRepo repository.TargetsRepository, recommendation RecommendationService) ProgressionService {
	return &progressionService{
		progressRepo:   progressRepo,
		targetsRepo:    targetsRepo,
		recommendation: recommendation,
		now:            time.Now,
	}
}

func (s *progressionService) Execute(ctx context.Context, userID uuid.UUID, req *domain.ExecuteDecisionRequest) (*domain.DecisionResult, error) {
	progress, err := s.progressRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Stale decision guard: the program may have moved through another
	// channel between assessment and execution.
	if progress.CurrentWeek != req.WeekNumber {
		return nil, domain.ErrWeekMismatch
	}

	if err := s.recommendation.ValidateDecision(req.Decision, progress); err != nil {
		return nil, err
	}

	switch req.Decision {
	case domain.DecisionAdvance:
		return s.advance(ctx, userID, progress)
	case domain.DecisionExtend:
		return s.extend(ctx, userID, progress, req.Modifications)
	case domain.DecisionReset:
		return s.reset(ctx, userID, progress)
	}
	return nil, domain.ErrInvalidInput
}

func (s *progressionService) advance(ctx context.Context, userID uuid.UUID, progress *domain.ProgramProgress) (*domain.DecisionResult, error) {
	newWeek := progress.CurrentWeek + 1
	newPhase := domain.PhaseForWeek(newWeek)

	entry := domain.DecisionHistoryEntry{
		Week:       progress.CurrentWeek,
		Decision:   domain.DecisionAdvance,
		Note:       fmt.Sprintf("advanced to week %d (phase %d)", newWeek, newPhase),
		ExecutedAt: s.now().UTC(),
	}

	if err := s.progressRepo.UpdateFields(ctx, userID, map[string]any{
		"current_week":     newWeek,
		"current_phase":    newPhase,
		"extensions_used":  0,
		"decision_history": progress.AppendHistory(entry),
	}); err != nil {
		return nil, err
	}

	targets, err := s.targetsRepo.ForWeek(ctx, userID, newWeek)
	if err != nil {
		// No partial-advance state may be observable: restore the
		// progress row before reporting failure.
		rollbackErr := s.progressRepo.UpdateFields(ctx, userID, map[string]any{
			"current_week":     progress.CurrentWeek,
			"current_phase":    progress.CurrentPhase,
			"extensions_used":  progress.ExtensionsUsed,
			"decision_history": progress.DecisionHistory,
		})
		if rollbackErr != nil {
			return nil, fmt.Errorf("advance failed (%w) and rollback failed: %v", err, rollbackErr)
		}
		return nil, fmt.Errorf("failed to load week %d targets: %w", newWeek, err)
	}

	return &domain.DecisionResult{
		Success:    true,
		Decision:   domain.DecisionAdvance,
		NewWeek:    newWeek,
		NewPhase:   newPhase,
		NewTargets: targets,
		Message:    fmt.Sprintf("Advanced to week %d of phase %d", newWeek, newPhase),
	}, nil
}

func (s *progressionService) extend(ctx context.Context, userID uuid.UUID, progress *domain.ProgramProgress, mods *domain.TargetModifications) (*domain.DecisionResult, error) {
	targets, err := s.targetsRepo.ForWeek(ctx, userID, progress.CurrentWeek)
	if err != nil {
		return nil, err
	}

	note := "extended without target changes"
	if mods != nil {
		if err := mods.Validate(targets); err != nil {
			return nil, err
		}
		targets = mods.Apply(targets)
		if err := s.targetsRepo.Upsert(ctx, &domain.WeeklyTargets{
			UserID:     userID,
			WeekNumber: progress.CurrentWeek,
			Steps:      targets.Steps,
			WaterOz:    targets.WaterOz,
			SleepHr:    targets.SleepHr,
		}); err != nil {
			return nil, err
		}
		note = fmt.Sprintf("extended with softened %s target", mods.FocusPillar)
	}

	entry := domain.DecisionHistoryEntry{
		Week:       progress.CurrentWeek,
		Decision:   domain.DecisionExtend,
		Note:       note,
		ExecutedAt: s.now().UTC(),
	}

	if err := s.progressRepo.UpdateFields(ctx, userID, map[string]any{
		"extensions_used":  progress.ExtensionsUsed + 1,
		"decision_history": progress.AppendHistory(entry),
	}); err != nil {
		return nil, err
	}

	return &domain.DecisionResult{
		Success:    true,
		Decision:   domain.DecisionExtend,
		NewWeek:    progress.CurrentWeek,
		NewPhase:   progress.CurrentPhase,
		NewTargets: targets,
		Message:    fmt.Sprintf("Week %d extended (%d of %d extensions used)", progress.CurrentWeek, progress.ExtensionsUsed+1, domain.MaxExtensionsPerWeek),
	}, nil
}

func (s *progressionService) reset(ctx context.Context, userID uuid.UUID, progress *domain.ProgramProgress) (*domain.DecisionResult, error) {
	newWeek := progress.CurrentWeek - 1
	if newWeek < 1 {
		newWeek = 1
	}
	newPhase := domain.PhaseForWeek(newWeek)

	targets, err := s.targetsRepo.ForWeek(ctx, userID, newWeek)
	if err != nil {
		return nil, err
	}

	entry := domain.DecisionHistoryEntry{
		Week:       progress.CurrentWeek,
		Decision:   domain.DecisionReset,
		Note:       fmt.Sprintf("reset to week %d", newWeek),
		ExecutedAt: s.now().UTC(),
	}

	if err := s.progressRepo.UpdateFields(ctx, userID, map[string]any{
		"current_week":     newWeek,
		"current_phase":    newPhase,
		"extensions_used":  0,
		"decision_history": progress.AppendHistory(entry),
	}); err != nil {
		return nil, err
	}

	return &domain.DecisionResult{
		Success:    true,
		Decision:   domain.DecisionReset,
		NewWeek:    newWeek,
		NewPhase:   newPhase,
		NewTargets: targets,
		Message:    fmt.Sprintf("Reset to week %d to rebuild momentum", newWeek),
	}, nil
}
