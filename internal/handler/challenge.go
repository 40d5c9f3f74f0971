package handler

import (
	"net/http"
	"time"

	"github.com/templui/fitshare/internal/ctxkeys"
	"github.com/templui/fitshare/internal/model"
	"github.com/templui/fitshare/internal/service"
)

type ChallengeHandler struct {
	challengeService *service.ChallengeService
}

func NewChallengeHandler(challengeService *service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{
		challengeService: challengeService,
	}
}

func (h *ChallengeHandler) Record(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ChallengeName string    `json:"challenge_name"`
		Duration      int       `json:"duration"`
		Distance      *float64  `json:"distance"`
		Speed         *float64  `json:"speed"`
		CompletedAt   time.Time `json:"completed_at"`
	}
	if err := parseJSON(w, r, &body); err != nil {
		writeBadRequest(w, err)
		return
	}

	progress := &model.ChallengeProgress{
		UserID:        ctxkeys.UserID(r.Context()),
		ChallengeName: body.ChallengeName,
		Duration:      body.Duration,
		Distance:      body.Distance,
		Speed:         body.Speed,
		CompletedAt:   body.CompletedAt,
	}

	err := h.challengeService.Record(r.Context(), progress)
	if err != nil {
		writeError(w, r, "failed to record challenge", err)
		return
	}

	writeJSON(w, http.StatusCreated, progress)
}

func (h *ChallengeHandler) Progress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.challengeService.Progress(r.Context(), r.PathValue("userId"))
	if err != nil {
		writeError(w, r, "failed to get challenge progress", err)
		return
	}

	writeJSON(w, http.StatusOK, progress)
}
