package domain

import (
	"errors"
	"fmt"
)

// ErrConfigMissing means a required credential or identifier is absent.
// It is checked before any network call is made.
var ErrConfigMissing = errors.New("provider not configured")

// UpstreamError means the provider responded but signaled failure, either
// through its own status convention (e.g. Google's status field) or a
// non-2xx HTTP code. Status carries the provider's token.
type UpstreamError struct {
	Provider string
	Status   string
	Message  string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s upstream error: %s", e.Provider, e.Status)
	}
	return fmt.Sprintf("%s upstream error: %s: %s", e.Provider, e.Status, e.Message)
}

// NetworkError means the provider call could not complete at all.
type NetworkError struct {
	Provider string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
