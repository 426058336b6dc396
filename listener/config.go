// Package listener runs named HTTP listeners inside an Fx application.
package listener

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultAddress is the default address for the HTTP listener.
	DefaultAddress = ":8080"

	// DefaultTimeout bounds how long a single request may run.
	DefaultTimeout = 30 * time.Second
)

var (
	// ErrEmptyAddress is returned when the address is empty.
	ErrEmptyAddress = errors.New("address must not be empty")

	// ErrInvalidRateLimit is returned for a negative rate or burst.
	ErrInvalidRateLimit = errors.New("rate limit must not be negative")

	// ErrInvalidTimeout is returned for a negative request timeout.
	ErrInvalidTimeout = errors.New("timeout must not be negative")

	// ErrListenFailed is returned when the server fails to listen on the configured address.
	ErrListenFailed = errors.New("failed to listen")

	// ErrShutdownFailed is returned when the server fails to shut down gracefully.
	ErrShutdownFailed = errors.New("shutdown failed")

	// ErrEmptyName is returned when the listener name is empty.
	ErrEmptyName = errors.New("listener name must not be empty")

	// ErrNilHandler is returned when a nil http.Handler is provided.
	ErrNilHandler = errors.New("handler must not be nil")
)

// Config holds the configuration for an HTTP listener.
//
// RequestsPerSecond enables a global token-bucket limit when positive. Burst
// defaults to the ceiling of RequestsPerSecond. Timeout bounds each request,
// including a POST /reload that rebuilds the configuration from its files.
type Config struct {
	Address           string        `yaml:"address"`
	RequestsPerSecond float64       `yaml:"requestsPerSecond"`
	Burst             int           `yaml:"burst"`
	Timeout           time.Duration `yaml:"timeout"`
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() bool {
	changed := false

	if c.Address == "" {
		c.Address = DefaultAddress
		changed = true
	}

	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
		changed = true
	}

	if c.RequestsPerSecond > 0 && c.Burst == 0 {
		c.Burst = max(int(c.RequestsPerSecond+0.999), 1)
		changed = true
	}

	return changed
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	if c.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Timeout)
	}

	if c.RequestsPerSecond < 0 || c.Burst < 0 {
		return fmt.Errorf("%w: rate %v, burst %d", ErrInvalidRateLimit, c.RequestsPerSecond, c.Burst)
	}

	return nil
}
