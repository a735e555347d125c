// Package main is the entrypoint of pngopt.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pngopt/internal/cfg"
	"pngopt/internal/domain/keys"
	"pngopt/internal/engine"
	"pngopt/internal/utils/logging"

	"github.com/mattn/go-isatty"
)

// main is the program entrypoint.
func main() {
	startTime := time.Now()

	v := cfg.NewViper()
	color := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	logging.Setup(os.Stderr, color, v.GetInt(keys.DebugLevel))

	// create cancellable context for shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runErr := cfg.Execute(ctx, v, engine.NewReporter(nil), os.Args[1:])
	logging.D(1, "Finished in %v", time.Since(startTime).Round(time.Millisecond))

	if runErr != nil {
		logging.E("Error: %v", runErr)
		cancel()
		os.Exit(1)
	}
}
