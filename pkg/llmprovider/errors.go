package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrNoProvidersConfigured = errors.New("llmprovider: no providers configured")
	ErrInvalidRequest        = errors.New("llmprovider: request has no messages")
	// ErrAllProvidersFailed wraps the joined per-provider errors.
	ErrAllProvidersFailed = errors.New("llmprovider: every provider failed")
	ErrEmptyResponse      = errors.New("llmprovider: empty completion")
)

// ProviderError tags an error with the provider that produced it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
