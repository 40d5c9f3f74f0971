package handler

import (
	"net/http"
	"time"

	"github.com/templui/fitshare/internal/model"
	"github.com/templui/fitshare/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type authResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
	}
	if err := parseJSON(w, r, &body); err != nil {
		writeBadRequest(w, err)
		return
	}

	user, err := h.authService.Register(r.Context(), body.Email, body.Password, body.DisplayName)
	if err != nil {
		writeError(w, r, "failed to register", err)
		return
	}

	h.issueToken(w, r, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := parseJSON(w, r, &body); err != nil {
		writeBadRequest(w, err)
		return
	}

	user, err := h.authService.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		writeError(w, r, "failed to login", err)
		return
	}

	h.issueToken(w, r, http.StatusOK, user)
}

func (h *AuthHandler) issueToken(w http.ResponseWriter, r *http.Request, status int, user *model.User) {
	token, expiresAt, err := h.authService.GenerateJWT(user)
	if err != nil {
		writeError(w, r, "failed to generate token", err)
		return
	}

	writeJSON(w, status, authResponse{Token: token, ExpiresAt: expiresAt, User: user})
}
