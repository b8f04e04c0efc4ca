package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/maxpulse/habit-coach/docs"
	"github.com/maxpulse/habit-coach/internal/api/handler"
	"github.com/maxpulse/habit-coach/internal/api/middleware"
)

type Router struct {
	userHandler       *handler.UserHandler
	metricHandler     *handler.MetricHandler
	assessmentHandler *handler.AssessmentHandler
	decisionHandler   *handler.DecisionHandler
	scoreHandler      *handler.ScoreHandler
	coachHandler      *handler.CoachHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	metricHandler *handler.MetricHandler,
	assessmentHandler *handler.AssessmentHandler,
	decisionHandler *handler.DecisionHandler,
	scoreHandler *handler.ScoreHandler,
	coachHandler *handler.CoachHandler,
) *Router {
	return &Router{
		userHandler:       userHandler,
		metricHandler:     metricHandler,
		assessmentHandler: assessmentHandler,
		decisionHandler:   decisionHandler,
		scoreHandler:      scoreHandler,
		coachHandler:      coachHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			r.Route("/{userId}/metrics", func(r chi.Router) {
				r.Post("/", rt.metricHandler.Log)
				r.Get("/", rt.metricHandler.List)
			})

			r.Route("/{userId}/assessments", func(r chi.Router) {
				r.Post("/{week}", rt.assessmentHandler.Conduct)
				r.Get("/{week}", rt.assessmentHandler.Get)
			})

			r.Post("/{userId}/decisions", rt.decisionHandler.Execute)
			r.Get("/{userId}/score", rt.scoreHandler.Get)
			r.Get("/{userId}/coach", rt.coachHandler.Get)
		})
	})

	return r
}
