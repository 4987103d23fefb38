package api

import (
	"encoding/json"
	"fmt"
)

// Error is returned for any request that reached the platform but did not
// produce a usable response. The raw body is kept so the UI error dialog can
// show a detailed dump next to the short message.
type Error struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("thingiverse: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("thingiverse: request failed with status %d", e.StatusCode)
}

// UserMessage returns the short human-readable message for dialogs, falling
// back to "Unknown" when the platform gave us nothing to show.
func (e *Error) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Body != "" {
		return e.Body
	}
	return "Unknown"
}

// Detail returns the raw error payload for the detailed section of the
// error dialog. Empty when the response had no body.
func (e *Error) Detail() string {
	return e.Body
}

// newError builds an Error from a non-2xx response body. Thingiverse error
// payloads are {"error": "..."}; anything else is kept verbatim.
func newError(statusCode int, body []byte) *Error {
	apiErr := &Error{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	}
	return apiErr
}
