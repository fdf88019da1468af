package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable wraps transport failures: refused connections, timeouts.
var ErrUnavailable = errors.New("api unavailable")

// APIError is a non-success answer from the API.
type APIError struct {
	Status   int
	Messages []string
}

func (e *APIError) Error() string {
	if msg := e.FirstMessage(); msg != "" {
		return msg
	}
	return fmt.Sprintf("api status %d", e.Status)
}

// FirstMessage returns the first non-blank server message.
func (e *APIError) FirstMessage() string {
	for _, m := range e.Messages {
		if strings.TrimSpace(m) != "" {
			return m
		}
	}
	return ""
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	var env struct {
		Messages []string `json:"messages"`
		Message  string   `json:"message"`
		Title    string   `json:"title"`
	}
	if json.Unmarshal(body, &env) == nil {
		switch {
		case len(env.Messages) > 0:
			apiErr.Messages = env.Messages
		case env.Message != "":
			apiErr.Messages = []string{env.Message}
		case env.Title != "":
			apiErr.Messages = []string{env.Title}
		}
	}
	return apiErr
}
