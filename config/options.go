package config

import "log/slog"

const (
	// DefaultDelimiter separates path segments.
	DefaultDelimiter = "."
	// DefaultReference wraps whole-value references and embedded placeholders.
	DefaultReference = "%"
)

// Options holds the Store settings.
type Options struct {
	Delimiter string
	Reference string
	Logger    *slog.Logger
}

// Option defines a function type for applying Store settings.
type Option func(*Options)

// SetDefaults fills empty settings.
func (o *Options) SetDefaults() bool {
	changed := false

	if o.Delimiter == "" {
		o.Delimiter = DefaultDelimiter
		changed = true
	}

	if o.Reference == "" {
		o.Reference = DefaultReference
		changed = true
	}

	if o.Logger == nil {
		o.Logger = slog.Default()
		changed = true
	}

	return changed
}

// WithDelimiter sets the path segment separator. Empty means DefaultDelimiter.
func WithDelimiter(delimiter string) Option {
	return func(opts *Options) {
		opts.Delimiter = delimiter
	}
}

// WithReference sets the marker used by references and placeholders.
// Empty means DefaultReference.
func WithReference(reference string) Option {
	return func(opts *Options) {
		opts.Reference = reference
	}
}

// WithLogger sets the logger used for load and merge diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
