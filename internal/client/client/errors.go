package client

import (
	"errors"
	"strings"
)

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrRequestFailed = errors.New("request failed")
)

// APIError carries the messages of a GraphQL "errors" array. It matches
// ErrRequestFailed with errors.Is, and its text is what the user sees.
type APIError struct {
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return ErrRequestFailed.Error()
	}
	return strings.Join(e.Messages, "; ")
}

func (e *APIError) Unwrap() error {
	return ErrRequestFailed
}
