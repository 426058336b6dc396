package live

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/0xalexb/hjarta-conf/config"
)

// ModuleConfig describes where the configuration comes from.
type ModuleConfig struct {
	Files   []string
	Watch   bool
	Options []config.Option
}

// NewModule creates an Fx module providing a *Holder loaded from the
// configured files and a *config.Store snapshot taken at startup.
// With Watch set, the files are watched for the lifetime of the app.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(cfg ModuleConfig) fx.Option {
	return fx.Module("config",
		fx.Provide(func(logger *slog.Logger) (*Holder, error) {
			opts := append([]config.Option{config.WithLogger(logger)}, cfg.Options...)

			return NewHolder(FromFiles(cfg.Files, opts...), logger)
		}),
		fx.Provide(func(holder *Holder) *config.Store {
			return holder.Snapshot()
		}),
		fx.Invoke(func(lifecycle fx.Lifecycle, holder *Holder) {
			if !cfg.Watch || len(cfg.Files) == 0 {
				return
			}

			var stop func() error

			ctx, cancel := context.WithCancel(context.Background())

			lifecycle.Append(fx.Hook{
				OnStart: func(context.Context) error {
					var err error

					stop, err = holder.Watch(ctx, cfg.Files)

					return err
				},
				OnStop: func(context.Context) error {
					cancel()

					if stop == nil {
						return nil
					}

					return stop()
				},
			})
		}),
	)
}
