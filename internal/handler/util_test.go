package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fitshare/internal/repository"
	"github.com/templui/fitshare/internal/service"
	"github.com/templui/fitshare/internal/validation"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
		field  string
	}{
		{"validation", validation.Invalid("caption", "is too long"), http.StatusBadRequest, CodeValidation, "caption"},
		{"wrapped validation", fmt.Errorf("save: %w", validation.Invalid("date", "bad")), http.StatusBadRequest, CodeValidation, "date"},
		{"already liked", service.ErrAlreadyLiked, http.StatusConflict, CodeConflict, ""},
		{"duplicate email", fmt.Errorf("%w: %w", service.ErrEmailAlreadyExists, repository.ErrUniquenessConflict), http.StatusConflict, CodeConflict, ""},
		{"missing share", repository.ErrSharedWorkoutNotFound, http.StatusNotFound, CodeNotFound, ""},
		{"missing nutrition", fmt.Errorf("load: %w", repository.ErrNutritionNotFound), http.StatusNotFound, CodeNotFound, ""},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, CodeUnauthenticated, ""},
		{"anything else", errors.New("disk on fire"), http.StatusInternalServerError, CodeInternal, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := classify(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body.Error)
			assert.Equal(t, tc.field, body.Field)
		})
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), "boom", errors.New("pq: password=hunter2"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hunter2")

	var body ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, CodeInternal, body.Error)
}

func TestParseJSONRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"comment":"hi","extra":1}`))
	var body struct {
		Comment string `json:"comment"`
	}
	err := parseJSON(httptest.NewRecorder(), req, &body)
	assert.Error(t, err)
}

func TestIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=15&bad=x&neg=-3", nil)
	assert.Equal(t, 15, intQuery(req, "limit", 20))
	assert.Equal(t, 20, intQuery(req, "bad", 20))
	assert.Equal(t, 20, intQuery(req, "neg", 20))
	assert.Equal(t, 20, intQuery(req, "missing", 20))
}
