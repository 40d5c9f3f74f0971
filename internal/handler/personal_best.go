package handler

import (
	"net/http"
	"time"

	"github.com/templui/fitshare/internal/ctxkeys"
	"github.com/templui/fitshare/internal/service"
)

type PersonalBestHandler struct {
	personalBestService *service.PersonalBestService
}

func NewPersonalBestHandler(personalBestService *service.PersonalBestService) *PersonalBestHandler {
	return &PersonalBestHandler{
		personalBestService: personalBestService,
	}
}

type personalBestRequest struct {
	ExerciseName string    `json:"exercise_name"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	DateAchieved time.Time `json:"date_achieved"`
}

func (h *PersonalBestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body personalBestRequest
	if err := parseJSON(w, r, &body); err != nil {
		writeBadRequest(w, err)
		return
	}

	best, err := h.personalBestService.Create(r.Context(), ctxkeys.UserID(r.Context()),
		body.ExerciseName, body.Weight, body.Reps, body.DateAchieved)
	if err != nil {
		writeError(w, r, "failed to create personal best", err)
		return
	}

	writeJSON(w, http.StatusCreated, best)
}

// Improve takes the exercise from the path; exercise_name in the body is ignored.
func (h *PersonalBestHandler) Improve(w http.ResponseWriter, r *http.Request) {
	var body personalBestRequest
	if err := parseJSON(w, r, &body); err != nil {
		writeBadRequest(w, err)
		return
	}

	best, err := h.personalBestService.Improve(r.Context(), ctxkeys.UserID(r.Context()),
		r.PathValue("exercise"), body.Weight, body.Reps, body.DateAchieved)
	if err != nil {
		writeError(w, r, "failed to update personal best", err)
		return
	}

	writeJSON(w, http.StatusOK, best)
}

func (h *PersonalBestHandler) Bests(w http.ResponseWriter, r *http.Request) {
	bests, err := h.personalBestService.Bests(r.Context(), r.PathValue("userId"))
	if err != nil {
		writeError(w, r, "failed to get personal bests", err)
		return
	}

	writeJSON(w, http.StatusOK, bests)
}
