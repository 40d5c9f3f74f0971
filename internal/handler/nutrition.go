package handler

import (
	"net/http"

	"github.com/templui/fitshare/internal/ctxkeys"
	"github.com/templui/fitshare/internal/service"
)

type NutritionHandler struct {
	nutritionService *service.NutritionService
}

func NewNutritionHandler(nutritionService *service.NutritionService) *NutritionHandler {
	return &NutritionHandler{
		nutritionService: nutritionService,
	}
}

func (h *NutritionHandler) SaveDaily(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Date             string `json:"date"`
		TargetCalories   int    `json:"target_calories"`
		ConsumedCalories int    `json:"consumed_calories"`
	}
	if err := parseJSON(w, r, &body); err != nil {
		writeBadRequest(w, err)
		return
	}

	entry, err := h.nutritionService.SaveDaily(r.Context(), ctxkeys.UserID(r.Context()),
		body.Date, body.TargetCalories, body.ConsumedCalories)
	if err != nil {
		writeError(w, r, "failed to save daily nutrition", err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *NutritionHandler) UpdateConsumed(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ConsumedCalories int `json:"consumed_calories"`
	}
	if err := parseJSON(w, r, &body); err != nil {
		writeBadRequest(w, err)
		return
	}

	entry, err := h.nutritionService.UpdateConsumed(r.Context(), ctxkeys.UserID(r.Context()),
		r.PathValue("date"), body.ConsumedCalories)
	if err != nil {
		writeError(w, r, "failed to update daily nutrition", err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *NutritionHandler) Daily(w http.ResponseWriter, r *http.Request) {
	entry, err := h.nutritionService.Daily(r.Context(), r.PathValue("userId"), r.PathValue("date"))
	if err != nil {
		writeError(w, r, "failed to get daily nutrition", err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Weekly accepts an optional ?end=YYYY-MM-DD, defaulting to today.
func (h *NutritionHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	entries, err := h.nutritionService.Weekly(r.Context(), r.PathValue("userId"), r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, r, "failed to get weekly nutrition", err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
