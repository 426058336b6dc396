package inspect

import (
	"fmt"
	"log/slog"
	"net/http"

	"go.uber.org/fx"

	"github.com/0xalexb/hjarta-conf/live"
)

// NewModule provides the inspection handler as the http.Handler named name,
// ready to be served by a listener of the same name.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func(holder *live.Holder, logger *slog.Logger) http.Handler {
				return NewHandler(holder, logger)
			},
			fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
		),
	)
}
