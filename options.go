package conf

import (
	"go.uber.org/fx"

	"github.com/0xalexb/hjarta-conf/config"
	"github.com/0xalexb/hjarta-conf/inspect"
	"github.com/0xalexb/hjarta-conf/listener"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules       []fx.Option
	LogLevel      string
	LogFormat     string
	ConfigFiles   []string
	ConfigWatch   bool
	ConfigOptions []config.Option
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFiles adds configuration files, merged in the order given.
// The parser is chosen by extension: .yaml, .yml, .json, .jsonc or .toml.
func WithConfigFiles(files ...string) Option {
	return func(opts *Options) {
		opts.ConfigFiles = append(opts.ConfigFiles, files...)
	}
}

// WithConfigWatch reloads the configuration whenever one of the files changes.
func WithConfigWatch(watch bool) Option {
	return func(opts *Options) {
		opts.ConfigWatch = watch
	}
}

// WithConfigOptions passes store options such as config.WithDelimiter.
func WithConfigOptions(storeOpts ...config.Option) Option {
	return func(opts *Options) {
		opts.ConfigOptions = append(opts.ConfigOptions, storeOpts...)
	}
}

// WithHTTPListener adds a named HTTP listener module to the application.
// The name is used as both the Fx module name and the DI named tag for http.Handler and Config.
// When options are provided (e.g., WithAddress), Config is supplied to DI automatically.
// Call multiple times with different names to create multiple listeners.
func WithHTTPListener(name string, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, listener.NewModule(name, opts...))
	}
}

// WithInspector serves the configuration inspection routes on a listener
// called name. Without listener options its Config is read from the
// listeners/<name> section of the configuration.
func WithInspector(name string, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, inspect.NewModule(name))

		if len(opts) == 0 {
			o.Modules = append(o.Modules, listener.ConfigFrom(name, "listeners", name))
		}

		o.Modules = append(o.Modules, listener.NewModule(name, opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (the default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
