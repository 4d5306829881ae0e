package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/allisson/mediport/internal/errors"
)

const maxErrorBodyLength = 256

// StatusError reports a remote response status with no domain meaning.
// 5xx and 429 unwrap to ErrUnavailable.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote api returned status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	if e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests {
		return errors.ErrUnavailable
	}
	return nil
}

// remoteMessage extracts a message from an error body, falling back to the raw text.
func remoteMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return truncate(strings.TrimSpace(string(body)), maxErrorBodyLength)
}

func errorForStatus(statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if message := remoteMessage(body); message != "" {
			return errors.Wrap(errors.ErrInvalidInput, message)
		}
		return errors.ErrInvalidInput
	case http.StatusUnauthorized:
		return errors.ErrUnauthorized
	case http.StatusForbidden:
		return errors.ErrForbidden
	case http.StatusNotFound:
		return errors.ErrNotFound
	case http.StatusConflict:
		if message := remoteMessage(body); message != "" {
			return errors.Wrap(errors.ErrConflict, message)
		}
		return errors.ErrConflict
	default:
		return &StatusError{StatusCode: statusCode, Body: truncate(strings.TrimSpace(string(body)), maxErrorBodyLength)}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
