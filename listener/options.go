package listener

import "time"

// Option defines a function type for configuring an HTTP listener.
type Option func(*Config)

// WithAddress sets the address for the HTTP listener.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}

// WithRateLimit limits the listener to requestsPerSecond with the given burst.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(cfg *Config) {
		cfg.RequestsPerSecond = requestsPerSecond
		cfg.Burst = burst
	}
}

// WithTimeout bounds how long each request may run.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.Timeout = timeout
	}
}
