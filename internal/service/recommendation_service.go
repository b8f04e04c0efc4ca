package service

import (
	"fmt"
	"math"

	"github.com/maxpulse/habit-coach/internal/domain"
)

const (
	// Decision rule thresholds, in strict precedence order: advance,
	// then reset, otherwise extend.
	AdvanceAvgPct   = 80.0
	AdvanceConsDays = 5
	ResetAvgPct     = 40.0

	// Confidence schedule.
	baseConfidence       = 70
	advanceHighAvgPct    = 85.0
	advanceHighConsDays  = 6
	advanceHighConf      = 95
	resetLowAvgPct       = 35.0
	resetLowConf         = 90
	extendConf           = 75
	streakBonusThreshold = 3
	rateBonusThreshold   = 70.0
	confidenceBonus      = 5
	maxConfidence        = 100

	// A weakest pillar below this is named as the extension focus area.
	focusPillarPct = 70.0
)

// RecommendationService applies the weekly progression policy.
type RecommendationService interface {
	// Recommend produces the assessment for a completed week. Targets
	// are the set currently in force, used to compute softened values
	// for an extension. Deterministic for identical inputs.
	Recommend(perf *domain.WeeklyPerformance, cons *domain.ConsistencyMetrics, targets domain.TargetSet, priorExtensions int) *domain.ProgressionAssessment
	// ValidateDecision guards a decision against the live program state
	// before execution. Returns a structured rejection, never panics.
	ValidateDecision(decision domain.Decision, progress *domain.ProgramProgress) error
}

type recommendationService struct{}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService() RecommendationService {
	return &recommendationService{}
}

func (s *recommendationService) Recommend(perf *domain.WeeklyPerformance, cons *domain.ConsistencyMetrics, targets domain.TargetSet, priorExtensions int) *domain.ProgressionAssessment {
	assess := &domain.ProgressionAssessment{
		Reasoning:     []string{},
		RiskFactors:   []string{},
		Opportunities: []string{},
	}

	switch {
	case perf.OverallPct >= AdvanceAvgPct && perf.ConsistentDays >= AdvanceConsDays:
		assess.Recommendation = domain.DecisionAdvance
		assess.Reasoning = append(assess.Reasoning,
			fmt.Sprintf("Weekly achievement %.1f%% cleared the %.0f%% advancement bar", perf.OverallPct, AdvanceAvgPct),
			fmt.Sprintf("%d consistent days met the %d-day requirement", perf.ConsistentDays, AdvanceConsDays),
		)
	case perf.OverallPct < ResetAvgPct:
		assess.Recommendation = domain.DecisionReset
		assess.Reasoning = append(assess.Reasoning,
			fmt.Sprintf("Weekly achievement %.1f%% fell below the %.0f%% reset threshold", perf.OverallPct, ResetAvgPct),
			"Stepping back a week rebuilds momentum at an attainable level",
		)
	case priorExtensions >= domain.ResetExtensionThreshold:
		assess.Recommendation = domain.DecisionReset
		assess.Reasoning = append(assess.Reasoning,
			fmt.Sprintf("Week already extended %d times (limit %d before reset)", priorExtensions, domain.ResetExtensionThreshold),
			"Repeated extensions suggest the current week's targets are miscalibrated",
		)
	default:
		assess.Recommendation = domain.DecisionExtend
		assess.Reasoning = append(assess.Reasoning,
			fmt.Sprintf("Weekly achievement %.1f%% is between the %.0f%% reset and %.0f%% advancement thresholds", perf.OverallPct, ResetAvgPct, AdvanceAvgPct),
			fmt.Sprintf("%d consistent days, short of the %d needed to advance", perf.ConsistentDays, AdvanceConsDays),
		)
		weakest := perf.PillarByName(perf.Weakest)
		if weakest != nil && weakest.AveragePct < focusPillarPct {
			assess.Reasoning = append(assess.Reasoning,
				fmt.Sprintf("Focus area: %s at %.1f%% achievement", weakest.Pillar, weakest.AveragePct))
		}
		assess.Modifications = buildModifications(perf, targets)
	}

	assess.Confidence = confidenceFor(assess.Recommendation, perf, cons)
	assess.RiskFactors = riskFactors(perf, cons)
	assess.Opportunities = opportunities(perf, cons)

	return assess
}

func confidenceFor(decision domain.Decision, perf *domain.WeeklyPerformance, cons *domain.ConsistencyMetrics) int {
	confidence := baseConfidence
	switch decision {
	case domain.DecisionAdvance:
		if perf.OverallPct >= advanceHighAvgPct && perf.ConsistentDays >= advanceHighConsDays {
			confidence = advanceHighConf
		}
	case domain.DecisionReset:
		if perf.OverallPct < resetLowAvgPct {
			confidence = resetLowConf
		}
	case domain.DecisionExtend:
		confidence = extendConf
	}

	if cons.CurrentStreak >= streakBonusThreshold {
		confidence += confidenceBonus
	}
	if cons.ConsistencyRate >= rateBonusThreshold {
		confidence += confidenceBonus
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	return confidence
}

// buildModifications softens the weakest pillar's target for an
// extended week. The reduction scales inversely with achievement; the
// result never drops below the safety floors. Mood check-in cadence is
// addressed qualitatively, never numerically.
func buildModifications(perf *domain.WeeklyPerformance, targets domain.TargetSet) *domain.TargetModifications {
	weakest := perf.PillarByName(perf.Weakest)
	if weakest == nil {
		return nil
	}

	reduction := reductionFor(weakest.AveragePct)
	mods := &domain.TargetModifications{
		FocusPillar: weakest.Pillar,
		Reason: fmt.Sprintf("%s achievement at %.1f%%; softening target by %.0f%% for the extended week",
			weakest.Pillar, weakest.AveragePct, reduction*100),
	}

	switch weakest.Pillar {
	case domain.PillarSteps:
		steps := int(math.Round(float64(targets.Steps) * (1 - reduction)))
		if steps < domain.StepsFloor {
			steps = domain.StepsFloor
		}
		mods.Steps = &steps
	case domain.PillarWater:
		water := math.Round(targets.WaterOz * (1 - reduction))
		if water < domain.WaterOzFloor {
			water = domain.WaterOzFloor
		}
		mods.WaterOz = &water
	case domain.PillarSleep:
		sleepReduction := reduction
		if sleepReduction > domain.MaxSleepReduction {
			sleepReduction = domain.MaxSleepReduction
		}
		sleep := math.Round(targets.SleepHr*(1-sleepReduction)*10) / 10
		if sleep < domain.SleepHrFloor {
			sleep = domain.SleepHrFloor
		}
		mods.SleepHr = &sleep
	case domain.PillarMood:
		mods.Reason = fmt.Sprintf("%s check-ins at %.1f%%; build a fixed check-in routine rather than lowering the cadence",
			weakest.Pillar, weakest.AveragePct)
	}

	return mods
}

func reductionFor(achievementPct float64) float64 {
	switch {
	case achievementPct < 30:
		return 0.25
	case achievementPct < 50:
		return 0.20
	case achievementPct < 70:
		return 0.15
	default:
		return 0.10
	}
}

func riskFactors(perf *domain.WeeklyPerformance, cons *domain.ConsistencyMetrics) []string {
	risks := []string{}
	if cons.WeekendRatio < 60 {
		risks = append(risks,
			fmt.Sprintf("Weekend performance drops more than 40%% relative to weekdays (%.0f%%)", cons.WeekendRatio))
	}
	declining := 0
	for _, pp := range perf.Pillars {
		if pp.Trend == domain.TrendDeclining {
			declining++
		}
	}
	if declining >= 2 {
		risks = append(risks, fmt.Sprintf("%d pillars show a declining trend", declining))
	}
	if cons.ConsistencyRate < 30 {
		risks = append(risks,
			fmt.Sprintf("Only %.0f%% of tracked days were consistent", cons.ConsistencyRate))
	}
	return risks
}

func opportunities(perf *domain.WeeklyPerformance, cons *domain.ConsistencyMetrics) []string {
	opps := []string{}
	improving := 0
	for _, pp := range perf.Pillars {
		if pp.Trend == domain.TrendImproving {
			improving++
		}
	}
	if improving >= 2 {
		opps = append(opps, fmt.Sprintf("%d pillars show an improving trend", improving))
	}
	if cons.LongestStreak >= 5 {
		opps = append(opps,
			fmt.Sprintf("A %d-day consistency streak shows the routine is taking hold", cons.LongestStreak))
	}
	if strongest := perf.PillarByName(perf.Strongest); strongest != nil && strongest.AveragePct >= 90 {
		opps = append(opps,
			fmt.Sprintf("%s is nearly automatic at %.1f%%; anchor new habits to it", strongest.Pillar, strongest.AveragePct))
	}
	return opps
}

func (s *recommendationService) ValidateDecision(decision domain.Decision, progress *domain.ProgramProgress) error {
	switch decision {
	case domain.DecisionAdvance:
		if progress.CurrentWeek >= domain.MaxProgramWeeks {
			return domain.ErrMaxWeekReached
		}
	case domain.DecisionReset:
		if progress.CurrentWeek <= 1 {
			return domain.ErrAtFirstWeek
		}
	case domain.DecisionExtend:
		if progress.ExtensionsUsed >= domain.MaxExtensionsPerWeek {
			return domain.ErrExtensionCap
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}
