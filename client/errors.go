package client

import (
	"encoding/json"
	"fmt"
)

// Error is a daemon error: any non-2xx response. Message carries the
// daemon's message field when the body parses as JSON, else the raw body
// text, so a malformed error body is never silently dropped.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("kmd error %d: %s", e.StatusCode, e.Message)
}

func daemonError(statusCode int, body []byte) *Error {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return &Error{StatusCode: statusCode, Message: parsed.Message}
	}
	return &Error{StatusCode: statusCode, Message: string(body)}
}

// ResponseError reports a 2xx response missing the field an operation
// extracts: a contract violation rather than a daemon failure.
type ResponseError struct {
	Field string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("unexpected kmd response: missing %s", e.Field)
}
