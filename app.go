package conf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/0xalexb/hjarta-conf/live"
	"github.com/0xalexb/hjarta-conf/logging"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is an Fx application with a live configuration at its core.
//
// Every App provides a *slog.Logger, a *live.Holder built from the configured
// files and a *config.Store snapshot of it.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options, os.Stderr),
	}
}

func configure(options *Options, w io.Writer) *fx.App {
	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := logging.NewLogger(loggerConfig, w)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		live.NewModule(live.ModuleConfig{
			Files:   options.ConfigFiles,
			Watch:   options.ConfigWatch,
			Options: options.ConfigOptions,
		}),
		fx.Options(options.Modules...),
	)
}

// Err reports an error from building the application graph, such as a
// configuration file that failed to load.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err() //nolint:wrapcheck
}

// Start runs the OnStart hooks, bounded by ctx.
func (app *App) Start(ctx context.Context) error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start app: %w", err)
	}

	return nil
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop runs the OnStop hooks, bounded by ctx.
func (app *App) Stop(ctx context.Context) error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Stop(ctx)
	if err != nil {
		return fmt.Errorf("failed to stop app: %w", err)
	}

	return nil
}
