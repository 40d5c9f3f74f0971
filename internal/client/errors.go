package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ServerError is returned when the server answered with a non-2xx status.
// Payload holds the response body exactly as received.
type ServerError struct {
	Status  int
	Payload []byte
}

func (e *ServerError) Error() string {
	body := e.Body()
	if body.Message != "" {
		return fmt.Sprintf("server returned %d: %s: %s", e.Status, body.Error, body.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// ErrorBody is the decoded form of the server's error payload.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Body decodes Payload; a payload that is not an error body yields the
// zero value.
func (e *ServerError) Body() ErrorBody {
	var body ErrorBody
	_ = json.Unmarshal(e.Payload, &body)
	return body
}

// NetworkFailure is returned when no response arrived.
type NetworkFailure struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkFailure) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkFailure) Unwrap() error {
	return e.Err
}

func statusOf(err error) int {
	var serr *ServerError
	if errors.As(err, &serr) {
		return serr.Status
	}
	return 0
}

// IsValidation reports whether the server rejected the input.
func IsValidation(err error) bool {
	return statusOf(err) == http.StatusBadRequest
}

// IsConflict reports whether the write collided with a uniqueness rule.
func IsConflict(err error) bool {
	return statusOf(err) == http.StatusConflict
}

func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}
