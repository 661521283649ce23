package api

import (
	"errors"
	"net/http"
	"strings"

	"alcyxob/oly-planner/internal/domain"
	"alcyxob/oly-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// LogSetRequest reports one performed set.
type LogSetRequest struct {
	Weight float64 `json:"weight" binding:"gte=0"`
	Reps   int     `json:"reps" binding:"gte=0"`
	RPE    float64 `json:"rpe" binding:"gte=0,lte=10"`
	Action string  `json:"action" binding:"omitempty,oneof=make belt heavy miss"`
}

// OverridesRequest updates per-exercise overrides; a null field clears the
// corresponding override.
type OverridesRequest struct {
	WorkSets     *int     `json:"workSets"`
	WeightOffset *float64 `json:"weightOffset"`
}

// CompleteDayResponse reports the per-lift adjustment deltas the completed
// day folded into the profile.
type CompleteDayResponse struct {
	Deltas map[domain.LiftKey]float64 `json:"deltas"`
}

func mapWorkoutError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrNoCurrentBlock):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDayAlreadyCompleted):
		abortWithError(c, http.StatusConflict, err.Error())
	case err != nil && strings.Contains(err.Error(), "out of range"):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}

// --- Handler Methods ---

// GetDayScheme renders one training day with expanded set targets,
// overrides and adjustments applied.
func (h *WorkoutHandler) GetDayScheme(c *gin.Context) {
	week, ok := intParam(c, "week")
	if !ok {
		return
	}
	day, ok := intParam(c, "day")
	if !ok {
		return
	}

	scheme, err := h.workoutService.RenderDay(c.Request.Context(), c.Param("name"), week, day)
	if err != nil {
		mapWorkoutError(c, err, "Failed to render day.")
		return
	}
	c.JSON(http.StatusOK, scheme)
}

// LogSet records the outcome of one set.
func (h *WorkoutHandler) LogSet(c *gin.Context) {
	week, ok := intParam(c, "week")
	if !ok {
		return
	}
	day, ok := intParam(c, "day")
	if !ok {
		return
	}
	ex, ok := intParam(c, "ex")
	if !ok {
		return
	}
	set, ok := intParam(c, "set")
	if !ok {
		return
	}

	var req LogSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	log, err := h.workoutService.LogSet(c.Request.Context(), c.Param("name"), week, day, ex, set, service.SetInput{
		Weight: req.Weight,
		Reps:   req.Reps,
		RPE:    req.RPE,
		Action: domain.SetAction(req.Action),
	})
	if err != nil {
		mapWorkoutError(c, err, "Failed to log set.")
		return
	}
	c.JSON(http.StatusOK, log)
}

// SetOverrides updates the work-set count and weight offset for one exercise.
func (h *WorkoutHandler) SetOverrides(c *gin.Context) {
	week, ok := intParam(c, "week")
	if !ok {
		return
	}
	day, ok := intParam(c, "day")
	if !ok {
		return
	}
	ex, ok := intParam(c, "ex")
	if !ok {
		return
	}

	var req OverridesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	log, err := h.workoutService.SetOverrides(c.Request.Context(), c.Param("name"), week, day, ex, req.WorkSets, req.WeightOffset)
	if err != nil {
		mapWorkoutError(c, err, "Failed to update overrides.")
		return
	}
	c.JSON(http.StatusOK, log)
}

// CompleteDay closes out a training day and applies its feedback.
func (h *WorkoutHandler) CompleteDay(c *gin.Context) {
	week, ok := intParam(c, "week")
	if !ok {
		return
	}
	day, ok := intParam(c, "day")
	if !ok {
		return
	}

	deltas, err := h.workoutService.CompleteDay(c.Request.Context(), c.Param("name"), week, day)
	if err != nil {
		mapWorkoutError(c, err, "Failed to complete day.")
		return
	}
	c.JSON(http.StatusOK, CompleteDayResponse{Deltas: deltas})
}
