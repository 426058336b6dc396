package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/0xalexb/hjarta-conf/config"
	"github.com/0xalexb/hjarta-conf/live"
	"github.com/0xalexb/hjarta-conf/logging"
)

// Name is the program name shown in usage.
const Name = "hjarta-conf"

// ErrAbsent is returned when a queried path does not exist.
// It maps to exit status 1 without an error message.
var ErrAbsent = errors.New("path does not exist")

// CLI is the top-level command-line interface.
type CLI struct {
	Log logConfig `embed:"" group:"log" prefix:"log-"`

	Files     []string `help:"Configuration file, merged in the order given." name:"file" short:"f"`
	Delimiter string   `default:"."                                           help:"Path segment delimiter."`
	Reference string   `default:"%"                                           help:"Reference and placeholder marker."`

	Get   Get   `cmd:"" help:"Print the expanded value at a path."`
	Exist Exist `cmd:"" help:"Report whether a path holds a value."`
	Dump  Dump  `cmd:"" help:"Print the whole configuration."`
	Set   Set   `cmd:"" help:"Set a value and print the resulting configuration."`
	Serve Serve `cmd:"" help:"Serve the configuration over HTTP."`
}

// Env is what commands run against.
type Env struct {
	Ctx    context.Context //nolint:containedctx // handed to long-running commands
	Out    io.Writer
	Logger *slog.Logger

	cli *CLI
}

// StoreOptions returns the store options selected on the command line.
func (e *Env) StoreOptions() []config.Option {
	return []config.Option{
		config.WithDelimiter(e.cli.Delimiter),
		config.WithReference(e.cli.Reference),
		config.WithLogger(e.Logger),
	}
}

// Load builds a store from the --file arguments.
func (e *Env) Load() (*config.Store, error) {
	return live.FromFiles(e.cli.Files, e.StoreOptions()...)()
}

type logConfig struct {
	Level  string `default:"info" enum:"debug,info,warn,error" help:"Set log level."`
	Format string `default:"json" enum:"json,text"             help:"Set log format."`
}

func (c *logConfig) loggerConfig() logging.LoggerConfig {
	return logging.LoggerConfig{Level: c.Level, Format: c.Format}
}

// Run parses args and executes the selected command, writing results to
// stdout and logs and usage errors to stderr. The exit function is called by
// --help and on usage errors.
func Run(ctx context.Context, stdout, stderr io.Writer, exit func(code int), args ...string) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name(Name),
		kong.Description("Inspect and serve hierarchical configuration."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, stderr),
		kong.ExplicitGroups([]kong.Group{{Key: "log", Title: "Logging options"}}),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true, Summary: true}),
	)
	if err != nil {
		return err //nolint:wrapcheck
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err //nolint:wrapcheck
	}

	env := &Env{
		Ctx:    ctx,
		Out:    stdout,
		Logger: logging.NewLogger(cli.Log.loggerConfig(), stderr),
		cli:    &cli,
	}

	return ktx.Run(env) //nolint:wrapcheck
}
