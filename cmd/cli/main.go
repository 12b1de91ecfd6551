package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Comfy-Org/node-diff/internal/app"
	"github.com/Comfy-Org/node-diff/internal/cli"
)

// main is the entrypoint for the node-diff checker.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. A breaking-change verdict surfaces as app.ErrBreakingChanges,
// which main maps to a non-zero exit like any other error.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	checker := app.NewApp(outW, errW, appConfig)

	if err := checker.Run(context.Background(), appConfig); err != nil {
		if errors.Is(err, app.ErrBreakingChanges) {
			// The report already explains the verdict; keep the error terse.
			return err
		}
		return fmt.Errorf("node check failed: %w", err)
	}
	return nil
}
