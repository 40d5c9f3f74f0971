package handler

import (
	"net/http"
	"time"

	"github.com/templui/fitshare/internal/ctxkeys"
	"github.com/templui/fitshare/internal/model"
	"github.com/templui/fitshare/internal/service"
)

type WorkoutHandler struct {
	workoutService *service.WorkoutService
}

func NewWorkoutHandler(workoutService *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
	}
}

type logWorkoutResponse struct {
	Workout    *model.Workout    `json:"workout"`
	Statistics *model.Statistics `json:"statistics"`
}

func (h *WorkoutHandler) Log(w http.ResponseWriter, r *http.Request) {
	var body struct {
		WorkoutType    string    `json:"workout_type"`
		Duration       int       `json:"duration"`
		CaloriesBurned int       `json:"calories_burned"`
		CompletedAt    time.Time `json:"completed_at"`
	}
	if err := parseJSON(w, r, &body); err != nil {
		writeBadRequest(w, err)
		return
	}

	workout, stats, err := h.workoutService.Log(r.Context(), ctxkeys.UserID(r.Context()),
		body.WorkoutType, body.Duration, body.CaloriesBurned, body.CompletedAt)
	if err != nil {
		writeError(w, r, "failed to log workout", err)
		return
	}

	writeJSON(w, http.StatusCreated, logWorkoutResponse{Workout: workout, Statistics: stats})
}

func (h *WorkoutHandler) History(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.workoutService.History(r.Context(), r.PathValue("userId"), intQuery(r, "limit", 0))
	if err != nil {
		writeError(w, r, "failed to get workout history", err)
		return
	}

	writeJSON(w, http.StatusOK, workouts)
}
