package listener

import (
	"fmt"
	"log/slog"
	"net/http"

	"go.uber.org/fx"

	"github.com/0xalexb/hjarta-conf/config"
)

func nameTag(name string) string {
	return fmt.Sprintf(`name:"%s"`, name)
}

// NewModule creates an Fx module for a named HTTP listener.
// The name is the module name and the DI name tag for both the http.Handler
// it serves and its Config. With options the module supplies Config itself;
// otherwise Config must be provided externally, for example by ConfigFrom.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		var cfg Config

		for _, apply := range opts {
			apply(&cfg)
		}

		moduleOpts = append(moduleOpts, fx.Supply(fx.Annotate(cfg, fx.ResultTags(nameTag(name)))))
	}

	moduleOpts = append(moduleOpts, fx.Invoke(
		fx.Annotate(
			func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, handler http.Handler, listenerCfg Config) error {
				srv, err := NewServer(name, handler, listenerCfg, func() {
					shutdownErr := shutdowner.Shutdown()
					if shutdownErr != nil {
						slog.Error("failed to trigger shutdown", "listener", name, "error", shutdownErr)
					}
				})
				if err != nil {
					return err
				}

				lifecycle.Append(fx.Hook{
					OnStart: srv.Start,
					OnStop:  srv.Stop,
				})

				return nil
			},
			fx.ParamTags("", "", nameTag(name), nameTag(name)),
		),
	))

	return fx.Module(name, moduleOpts...)
}

// ConfigFrom provides the named listener Config by decoding a section of the
// application's *config.Store. The section segments are joined with the store
// delimiter. Missing sections are an error.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func ConfigFrom(name string, section ...string) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	provide := func(store *config.Store) (Config, error) {
		var cfg Config

		decoded, err := config.Provider(&cfg, store.Join(section...))(store)
		if err != nil {
			return Config{}, fmt.Errorf("listener %q: %w", name, err)
		}

		return *decoded, nil
	}

	return fx.Provide(fx.Annotate(provide, fx.ResultTags(nameTag(name))))
}
