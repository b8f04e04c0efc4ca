package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/api/validation"
	"github.com/maxpulse/habit-coach/internal/domain"
	"github.com/maxpulse/habit-coach/internal/service"
	"github.com/maxpulse/habit-coach/pkg/problem"
)

type DecisionHandler struct {
	service service.ProgressionService
}

func NewDecisionHandler(service service.ProgressionService) *DecisionHandler {
	return &DecisionHandler{service: service}
}

// Execute handles POST /v1/users/{userId}/decisions
// @Summary Execute a progression decision
// @Description Apply an ADVANCE, EXTEND, or RESET decision to the user's program. The decision must have been computed against the user's current week; a stale decision is rejected with a conflict.
// @Tags decisions
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.ExecuteDecisionRequest true "Decision to execute"
// @Success 200 {object} domain.DecisionResult
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 409 {object} problem.Problem "Decision rejected: stale week, program bounds, or extension cap"
// @Failure 422 {object} problem.Problem "Validation error or unsafe target modification"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/decisions [post]
func (h *DecisionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.ExecuteDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.service.Execute(r.Context(), userID, &req)
	if err != nil {
		writeDecisionError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func writeDecisionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").Write(w)
	case errors.Is(err, domain.ErrWeekMismatch):
		problem.Conflict("Program week changed since this decision was computed").Write(w)
	case errors.Is(err, domain.ErrMaxWeekReached):
		problem.Conflict("Cannot advance past the final program week").Write(w)
	case errors.Is(err, domain.ErrAtFirstWeek):
		problem.Conflict("Cannot reset below week 1").Write(w)
	case errors.Is(err, domain.ErrExtensionCap):
		problem.Conflict("Weekly extension cap reached").Write(w)
	case errors.Is(err, domain.ErrTargetBelowFloor):
		problem.ValidationError("Target modification violates safety floors", nil).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest("Invalid decision").Write(w)
	default:
		problem.InternalError("Failed to execute decision").Write(w)
	}
}
