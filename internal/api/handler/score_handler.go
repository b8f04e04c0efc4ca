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

type ScoreHandler struct {
	service service.ScoreService
}

func NewScoreHandler(service service.ScoreService) *ScoreHandler {
	return &ScoreHandler{service: service}
}

// ScoreResponse is the response body for the cumulative score endpoint.
type ScoreResponse struct {
	Score int `json:"score" example:"78"`
}

// Get handles GET /v1/users/{userId}/score
// @Summary Cumulative score
// @Description Blend historical weekly achievement with the current week's in-progress pillar percentages (fractions 0-1) into a single 0-100 score. Memoized for five minutes per user.
// @Tags score
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param steps query number true "Current steps achievement fraction (0-1)" example(0.8)
// @Param water query number true "Current water achievement fraction (0-1)" example(0.65)
// @Param sleep query number true "Current sleep achievement fraction (0-1)" example(0.9)
// @Param mood query number true "Current mood check-in achievement fraction (0-1)" example(1.0)
// @Param force query boolean false "Bypass the memoized score" default(false)
// @Success 200 {object} ScoreResponse
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/score [get]
func (h *ScoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	pcts, fieldErrors := parsePillarFractions(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	force := r.URL.Query().Get("force") == "true"

	score, err := h.service.Cumulative(r.Context(), userID, pcts, force)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute score").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScoreResponse{Score: score})
}

func parsePillarFractions(r *http.Request) ([]float64, []problem.FieldError) {
	var fieldErrors []problem.FieldError
	params := []string{"steps", "water", "sleep", "mood"}
	pcts := make([]float64, 0, len(params))

	for _, name := range params {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   name,
				Message: "is required",
			})
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 || value > 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   name,
				Message: "must be a number between 0 and 1",
			})
			continue
		}
		pcts = append(pcts, value)
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return pcts, nil
}
