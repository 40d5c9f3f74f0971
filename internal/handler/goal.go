package handler

import (
	"net/http"

	"github.com/templui/fitshare/internal/ctxkeys"
	"github.com/templui/fitshare/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		GoalType       string `json:"goal_type"`
		TargetCalories int    `json:"target_calories"`
	}
	if err := parseJSON(w, r, &body); err != nil {
		writeBadRequest(w, err)
		return
	}

	goal, err := h.goalService.Create(r.Context(), ctxkeys.UserID(r.Context()), body.GoalType, body.TargetCalories)
	if err != nil {
		writeError(w, r, "failed to create goal", err)
		return
	}

	writeJSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) Goals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.Goals(r.Context(), r.PathValue("userId"))
	if err != nil {
		writeError(w, r, "failed to get goals", err)
		return
	}

	writeJSON(w, http.StatusOK, goals)
}
