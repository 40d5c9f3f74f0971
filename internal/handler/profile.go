package handler

import (
	"net/http"

	"github.com/templui/fitshare/internal/ctxkeys"
	"github.com/templui/fitshare/internal/model"
	"github.com/templui/fitshare/internal/service"
)

type ProfileHandler struct {
	profileService    *service.ProfileService
	statisticsService *service.StatisticsService
}

func NewProfileHandler(profileService *service.ProfileService, statisticsService *service.StatisticsService) *ProfileHandler {
	return &ProfileHandler{
		profileService:    profileService,
		statisticsService: statisticsService,
	}
}

func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.ByUserID(r.Context(), r.PathValue("userId"))
	if err != nil {
		writeError(w, r, "failed to get profile", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DisplayName   string   `json:"display_name"`
		AvatarInitial string   `json:"avatar_initial"`
		Height        *float64 `json:"height"`
		Weight        *float64 `json:"weight"`
		Age           *int     `json:"age"`
		WorkoutSplit  string   `json:"workout_split"`
		IncludeCardio bool     `json:"include_cardio"`
		CardioType    *string  `json:"cardio_type"`
	}
	if err := parseJSON(w, r, &body); err != nil {
		writeBadRequest(w, err)
		return
	}

	profile := &model.Profile{
		UserID:        ctxkeys.UserID(r.Context()),
		DisplayName:   body.DisplayName,
		AvatarInitial: body.AvatarInitial,
		Height:        body.Height,
		Weight:        body.Weight,
		Age:           body.Age,
		WorkoutSplit:  body.WorkoutSplit,
		IncludeCardio: body.IncludeCardio,
		CardioType:    body.CardioType,
	}

	err := h.profileService.Save(r.Context(), profile)
	if err != nil {
		writeError(w, r, "failed to save profile", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statisticsService.ByUserID(r.Context(), r.PathValue("userId"))
	if err != nil {
		writeError(w, r, "failed to get statistics", err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
