package handler

import (
	"net/http"

	"github.com/templui/fitshare/internal/ctxkeys"
	"github.com/templui/fitshare/internal/service"
)

type SocialHandler struct {
	socialService *service.SocialService
}

func NewSocialHandler(socialService *service.SocialService) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
	}
}

func (h *SocialHandler) Share(w http.ResponseWriter, r *http.Request) {
	var body struct {
		WorkoutHistoryID string `json:"workout_history_id"`
		Caption          string `json:"caption"`
		Visibility       string `json:"visibility"`
	}
	if err := parseJSON(w, r, &body); err != nil {
		writeBadRequest(w, err)
		return
	}

	shared, err := h.socialService.Share(r.Context(), ctxkeys.UserID(r.Context()),
		body.WorkoutHistoryID, body.Caption, body.Visibility)
	if err != nil {
		writeError(w, r, "failed to share workout", err)
		return
	}

	writeJSON(w, http.StatusCreated, shared)
}

func (h *SocialHandler) Feed(w http.ResponseWriter, r *http.Request) {
	visibility := r.URL.Query().Get("visibility")

	shared, err := h.socialService.Feed(r.Context(), visibility, intQuery(r, "limit", 0))
	if err != nil {
		writeError(w, r, "failed to load feed", err)
		return
	}

	writeJSON(w, http.StatusOK, shared)
}

func (h *SocialHandler) SharedByUser(w http.ResponseWriter, r *http.Request) {
	shared, err := h.socialService.SharedByUser(r.Context(), ctxkeys.UserID(r.Context()),
		r.PathValue("userId"), intQuery(r, "limit", 0))
	if err != nil {
		writeError(w, r, "failed to list shared workouts", err)
		return
	}

	writeJSON(w, http.StatusOK, shared)
}

func (h *SocialHandler) SharedWorkout(w http.ResponseWriter, r *http.Request) {
	shared, err := h.socialService.SharedWorkout(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, r, "failed to get shared workout", err)
		return
	}

	writeJSON(w, http.StatusOK, shared)
}

func (h *SocialHandler) Like(w http.ResponseWriter, r *http.Request) {
	shared, err := h.socialService.Like(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, r, "failed to like workout", err)
		return
	}

	writeJSON(w, http.StatusOK, shared)
}

func (h *SocialHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	shared, err := h.socialService.Unlike(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, r, "failed to unlike workout", err)
		return
	}

	writeJSON(w, http.StatusOK, shared)
}

func (h *SocialHandler) HasLiked(w http.ResponseWriter, r *http.Request) {
	liked, err := h.socialService.HasLiked(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, r, "failed to check like", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}

func (h *SocialHandler) Comment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Comment string `json:"comment"`
	}
	if err := parseJSON(w, r, &body); err != nil {
		writeBadRequest(w, err)
		return
	}

	comment, err := h.socialService.Comment(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("id"), body.Comment)
	if err != nil {
		writeError(w, r, "failed to add comment", err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (h *SocialHandler) Comments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.socialService.Comments(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, r, "failed to get comments", err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *SocialHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	shared, err := h.socialService.Reconcile(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, r, "failed to reconcile counters", err)
		return
	}

	writeJSON(w, http.StatusOK, shared)
}
