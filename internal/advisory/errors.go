package advisory

import "errors"

var (
	// ErrNotConfigured is returned when the upstream weather provider has no
	// API credential configured.
	ErrNotConfigured = errors.New("weather provider is not configured")

	// ErrUpstreamUnavailable is returned when the upstream provider call
	// fails; no retry beyond the client's own resilience is performed.
	ErrUpstreamUnavailable = errors.New("weather provider unavailable")
)
