package handler

import (
	"net/http"

	"github.com/templui/fitshare/internal/ctxkeys"
	"github.com/templui/fitshare/internal/service"
)

type AccountHandler struct {
	userService *service.UserService
}

func NewAccountHandler(userService *service.UserService) *AccountHandler {
	return &AccountHandler{
		userService: userService,
	}
}

func (h *AccountHandler) Account(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	account, err := h.userService.Account(r.Context(), userID)
	if err != nil {
		writeError(w, r, "failed to load account", err)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := parseJSON(w, r, &body); err != nil {
		writeBadRequest(w, err)
		return
	}

	userID := ctxkeys.UserID(r.Context())
	err := h.userService.UpdatePassword(r.Context(), userID, body.CurrentPassword, body.NewPassword)
	if err != nil {
		writeError(w, r, "failed to update password", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
