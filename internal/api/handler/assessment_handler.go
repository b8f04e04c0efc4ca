package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
	"github.com/maxpulse/habit-coach/internal/service"
	"github.com/maxpulse/habit-coach/pkg/problem"
)

type AssessmentHandler struct {
	service service.AssessmentService
}

func NewAssessmentHandler(service service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// Conduct handles POST /v1/users/{userId}/assessments/{week}
// @Summary Conduct a weekly assessment
// @Description Run the end-of-week assessment: performance, consistency, and a progression recommendation. A cached result is returned unless force=true. When the week has no data yet the latest prior assessment is returned flagged as historical.
// @Tags assessments
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param week path integer true "Program week (1-12)" minimum(1) maximum(12)
// @Param force query boolean false "Recompute even if a cached assessment exists" default(false)
// @Success 200 {object} domain.AssessmentResult
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found or no data to assess"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/assessments/{week} [post]
func (h *AssessmentHandler) Conduct(w http.ResponseWriter, r *http.Request) {
	userID, week, ok := parseAssessmentParams(w, r)
	if !ok {
		return
	}

	force := r.URL.Query().Get("force") == "true"

	result, err := h.service.Conduct(r.Context(), userID, week, force)
	if err != nil {
		writeAssessmentError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Get handles GET /v1/users/{userId}/assessments/{week}
// @Summary Get a weekly assessment
// @Description Fetch the assessment for a week, computing it on first read.
// @Tags assessments
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param week path integer true "Program week (1-12)" minimum(1) maximum(12)
// @Success 200 {object} domain.AssessmentResult
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found or no data to assess"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/assessments/{week} [get]
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, week, ok := parseAssessmentParams(w, r)
	if !ok {
		return
	}

	result, err := h.service.Conduct(r.Context(), userID, week, false)
	if err != nil {
		writeAssessmentError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func parseAssessmentParams(w http.ResponseWriter, r *http.Request) (uuid.UUID, int, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, 0, false
	}

	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil || week < 1 || week > domain.MaxProgramWeeks {
		problem.BadRequest("Week must be an integer between 1 and 12").Write(w)
		return uuid.Nil, 0, false
	}

	return userID, week, true
}

func writeAssessmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").Write(w)
	case errors.Is(err, domain.ErrNoMetrics):
		problem.NotFound("No metrics logged yet for this user").Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest("Invalid assessment request").Write(w)
	default:
		problem.InternalError("Failed to conduct assessment").Write(w)
	}
}
