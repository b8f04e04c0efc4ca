package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
	"github.com/maxpulse/habit-coach/internal/llm"
	"github.com/maxpulse/habit-coach/internal/service"
	"github.com/maxpulse/habit-coach/pkg/problem"
)

type CoachHandler struct {
	service service.CoachService
}

func NewCoachHandler(service service.CoachService) *CoachHandler {
	return &CoachHandler{service: service}
}

// Get handles GET /v1/users/{userId}/coach
// @Summary Weekly coaching narrative
// @Description Generate an LLM-written weekly narrative from the current week's assessment. Unavailable when OpenAI is not configured.
// @Tags coach
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.CoachResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found or no data to assess"
// @Failure 503 {object} problem.Problem "Coaching narratives unavailable"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/coach [get]
func (h *CoachHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	response, err := h.service.Narrative(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrNoMetrics):
			problem.NotFound("No metrics logged yet for this user").Write(w)
		case errors.Is(err, llm.ErrOpenAIUnavailable):
			problem.ServiceUnavailable("Coaching narratives are not configured").Write(w)
		default:
			problem.InternalError("Failed to generate coaching narrative").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
