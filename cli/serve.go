package cli

import (
	"context"
	"fmt"
	"time"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/listener"
)

const stopTimeout = 15 * time.Second

// Serve exposes the configuration over HTTP until interrupted.
type Serve struct {
	Address string  `default:":8080" help:"Listen address."`
	Watch   bool    `help:"Reload when a configuration file changes."`
	Rate    float64 `help:"Requests per second; 0 disables rate limiting."`
	Burst   int     `help:"Rate limit burst; defaults to the rate."`

	Timeout time.Duration `default:"30s" help:"Per-request timeout, including reloads."`
}

// Run executes the serve command. It returns once the context is done.
func (s *Serve) Run(env *Env) error {
	app := conf.NewApp(
		conf.WithLogLevel(env.cli.Log.Level),
		conf.WithLogFormat(env.cli.Log.Format),
		conf.WithConfigFiles(env.cli.Files...),
		conf.WithConfigWatch(s.Watch),
		conf.WithConfigOptions(env.StoreOptions()...),
		conf.WithInspector("inspect",
			listener.WithAddress(s.Address),
			listener.WithRateLimit(s.Rate, s.Burst),
			listener.WithTimeout(s.Timeout),
		),
	)

	err := app.Start(env.Ctx)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	<-env.Ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	err = app.Stop(stopCtx)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	return nil
}
