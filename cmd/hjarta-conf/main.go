package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/0xalexb/hjarta-conf/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Run(ctx, os.Stdout, os.Stderr, os.Exit, os.Args[1:]...)

	stop()

	if err != nil {
		if !errors.Is(err, cli.ErrAbsent) {
			slog.Error("run failed", slog.Any("error", err))
		}

		os.Exit(1)
	}
}
