package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/templui/fitshare/internal/repository"
	"github.com/templui/fitshare/internal/service"
	"github.com/templui/fitshare/internal/validation"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

const (
	CodeValidation      = "validation_error"
	CodeConflict        = "uniqueness_conflict"
	CodeNotFound        = "not_found"
	CodeUnauthenticated = "unauthenticated"
	CodeInvalidRequest  = "invalid_request"
	CodeInternal        = "internal_error"
)

var notFoundErrors = []error{
	repository.ErrUserNotFound,
	repository.ErrProfileNotFound,
	repository.ErrGoalNotFound,
	repository.ErrWorkoutNotFound,
	repository.ErrNutritionNotFound,
	repository.ErrPersonalBestNotFound,
	repository.ErrSharedWorkoutNotFound,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func intQuery(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func writeBadRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, ErrorBody{Error: CodeInvalidRequest, Message: err.Error()})
}

// writeError maps service and repository errors to a status code and
// error body. Unexpected errors are logged and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status, body := classify(err)
	if status == http.StatusInternalServerError {
		slog.Error(msg, "error", err, "method", r.Method, "path", r.URL.Path)
	}
	writeJSON(w, status, body)
}

func classify(err error) (int, ErrorBody) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return http.StatusBadRequest, ErrorBody{Error: CodeValidation, Message: verr.Reason, Field: verr.Field}
	}

	if errors.Is(err, repository.ErrUniquenessConflict) {
		return http.StatusConflict, ErrorBody{Error: CodeConflict, Message: err.Error()}
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound, ErrorBody{Error: CodeNotFound, Message: target.Error()}
		}
	}

	if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrInvalidCurrentPassword) {
		return http.StatusUnauthorized, ErrorBody{Error: CodeUnauthenticated, Message: "invalid credentials"}
	}

	return http.StatusInternalServerError, ErrorBody{Error: CodeInternal, Message: "internal server error"}
}
