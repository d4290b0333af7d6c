package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/sitekeeper/internal/buildinfo"
	"github.com/dmitrijs2005/sitekeeper/internal/client/cli"
	"github.com/dmitrijs2005/sitekeeper/internal/client/config"
	"github.com/dmitrijs2005/sitekeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, config.LoadConfig(), os.Stderr)
	stop()
	os.Exit(code)

}

// run starts the console and returns the process exit code. Deferred cleanup
// happens before it returns.
func run(ctx context.Context, cfg *config.Config, stderr io.Writer) int {
	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn(ctx, "closing database", "error", err)
		}
	}()

	app.Run(ctx)
	return 0
}
