package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vk/treeweight/internal/app"
	"github.com/vk/treeweight/internal/cli"
	"github.com/vk/treeweight/internal/hcl_adapter"
)

// main is the entrypoint for the treeweight application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, stdinIfPiped(), os.Args[1:]); err != nil {
		exitErr := cli.ToExitError(err)
		fmt.Fprintln(os.Stderr, exitErr.Message)
		stop()
		os.Exit(exitErr.Code)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, stdin io.Reader, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW, hcl_adapter.NewLoader())
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	treeweightApp := app.NewApp(outW, errW, appConfig, stdin)
	return treeweightApp.Run(ctx)
}

// stdinIfPiped returns os.Stdin unless it is a terminal.
func stdinIfPiped() io.Reader {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return nil
	}
	return os.Stdin
}
