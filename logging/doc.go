// Package logging builds the structured log/slog loggers used across the
// module: JSON by default, text on request, level parsed from a name.
// The same logger is handed to Fx, the configuration store and the HTTP
// listener.
package logging
