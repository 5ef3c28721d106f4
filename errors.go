package ytstats

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL is returned when a string cannot be recognized as a
	// YouTube video URL or a bare video ID.
	ErrInvalidURL = errors.New("not a recognized youtube video URL")
	// ErrMissingAPIKey is returned by NewClient before any network call
	// when no usable API key was provided.
	ErrMissingAPIKey = errors.New("youtube API key is not configured")
	// ErrRequestFailed wraps transport-level failures (DNS, connection,
	// timeout) reaching the provider.
	ErrRequestFailed = errors.New("youtube request failed")
	// ErrDecodeResponse wraps any response body that does not match the
	// expected schema, including unparsable count strings.
	ErrDecodeResponse = errors.New("unexpected youtube response body")
	// ErrVideoNotFound is returned when the provider answers 200 with an
	// empty items list for the requested video ID.
	ErrVideoNotFound = errors.New("video not found")
)

// APIError carries the provider status and reason of a non-success
// response, e.g. 403 quotaExceeded or 400 keyInvalid.
type APIError struct {
	StatusCode int
	Message    string
	Reason     string
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("youtube API error %d (%s): %s", e.StatusCode, e.Reason, e.Message)
	}
	return fmt.Sprintf("youtube API error %d: %s", e.StatusCode, e.Message)
}
