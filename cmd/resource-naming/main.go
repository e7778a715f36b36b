package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"resource-naming/internal/cliapp"
	"resource-naming/internal/config"
	"resource-naming/internal/logging"
)

var (
	// Version is set at build time via -ldflags "-X main.Version=...".
	Version = "dev"
	Commit  = "none"
)

// run logs its own errors; main only picks the exit code.
func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, pflag.ErrHelp):
		return
	case errors.Is(err, cliapp.ErrUsage):
		fmt.Fprint(os.Stderr, cliapp.Usage())
		os.Exit(2)
	}
	os.Exit(1)
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprint(stderr, cliapp.Usage())
			return err
		}
		err = fmt.Errorf("failed to load configuration: %w", err)
		// No configured logger exists yet.
		slog.New(slog.NewTextHandler(stderr, nil)).Error("resource-naming error", slog.String("error", err.Error()))
		return err
	}

	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "resource-naming %s (%s)\n", Version, Commit)
		return nil
	}

	logger := logging.NewLogger(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: stderr,
	})

	validationResult := cfg.Validate()
	for _, warn := range validationResult.Warnings {
		logger.Warn("configuration warning",
			slog.String("field", warn.Field),
			slog.String("message", warn.Message),
			slog.String("hint", warn.Hint),
		)
	}
	if validationResult.HasErrors() {
		for _, err := range validationResult.Errors {
			logger.Error("configuration error",
				slog.String("field", err.Field),
				slog.String("message", err.Message),
				slog.String("hint", err.Hint),
			)
		}
		return fmt.Errorf("configuration validation failed")
	}

	app, err := cliapp.New(cfg, logger, stdout)
	if err == nil {
		err = app.Run(context.Background(), cfg.Args)
	}
	if err != nil {
		logger.Error("resource-naming error", slog.String("error", err.Error()))
	}
	return err
}
