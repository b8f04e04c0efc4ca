// Habit Coach API
//
// REST API for the 90-day habit program's weekly progression engine.
//
//	@title			Habit Coach API
//	@version		1.0
//	@description	Track daily health metrics against weekly targets and drive advance/extend/reset progression decisions.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	Enrollment and program position endpoints
//
//	@tag.name			metrics
//	@tag.description	Daily metric tracking endpoints
//
//	@tag.name			assessments
//	@tag.description	Weekly assessment endpoints
//
//	@tag.name			decisions
//	@tag.description	Progression decision execution endpoints
//
//	@tag.name			score
//	@tag.description	Cumulative score endpoints
//
//	@tag.name			coach
//	@tag.description	LLM coaching narrative endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/maxpulse/habit-coach/internal/api"
	"github.com/maxpulse/habit-coach/internal/api/handler"
	"github.com/maxpulse/habit-coach/internal/config"
	"github.com/maxpulse/habit-coach/internal/domain"
	"github.com/maxpulse/habit-coach/internal/llm"
	"github.com/maxpulse/habit-coach/internal/repository"
	"github.com/maxpulse/habit-coach/internal/scheduler"
	"github.com/maxpulse/habit-coach/internal/seed"
	"github.com/maxpulse/habit-coach/internal/service"
	"github.com/maxpulse/habit-coach/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "habit-coach-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.DailyMetricRecord{},
		&domain.ProgramProgress{},
		&domain.WeeklyTargets{},
		&domain.WeeklyAssessmentRecord{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	metricRepo := repository.NewMetricRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	targetsRepo := repository.NewTargetsRepository(db)

	// Initialize services
	scoreCache := service.NewScoreCache(service.DefaultScoreTTL)
	performanceService := service.NewPerformanceService()
	consistencyService := service.NewConsistencyService()
	recommendationService := service.NewRecommendationService()
	assessmentService := service.NewAssessmentService(
		metricRepo, progressRepo, assessmentRepo, targetsRepo,
		performanceService, consistencyService, recommendationService,
		scoreCache,
	)
	progressionService := service.NewProgressionService(progressRepo, targetsRepo, recommendationService)
	scoreService := service.NewScoreService(assessmentRepo, progressRepo, scoreCache)
	userService := service.NewUserService(userRepo, progressRepo, targetsRepo)
	metricService := service.NewMetricService(metricRepo, userRepo, progressRepo, targetsRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICoachModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, coach endpoint will be unavailable")
	}
	var coachLLM llm.CoachLLM
	if openaiClient != nil {
		coachLLM = openaiClient
	}
	coachService := service.NewCoachService(assessmentService, progressRepo, coachLLM)

	// Week-boundary sweep
	if cfg.SchedulerEnabled {
		sweep := scheduler.NewSweep(progressRepo, assessmentService)
		if err := sweep.Start(cfg.SchedulerTime); err != nil {
			log.Fatalf("Failed to start week-boundary sweep: %v", err)
		}
		defer sweep.Stop()
	}

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	metricHandler := handler.NewMetricHandler(metricService)
	assessmentHandler := handler.NewAssessmentHandler(assessmentService)
	decisionHandler := handler.NewDecisionHandler(progressionService)
	scoreHandler := handler.NewScoreHandler(scoreService)
	coachHandler := handler.NewCoachHandler(coachService)

	// Setup router
	router := api.NewRouter(userHandler, metricHandler, assessmentHandler, decisionHandler, scoreHandler, coachHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
