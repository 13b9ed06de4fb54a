// Package main implements a register level validator for GeForce3 chipset detection
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/nvprobe/internal/cli"
	"github.com/retroenv/nvprobe/internal/config"
	"github.com/retroenv/nvprobe/internal/pipeline"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts.Quiet)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts.Quiet)

	verdict, err := pipeline.New(logger).Execute(ctx, opts)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			os.Exit(1)
		}
		logger.Fatal("Validation failed", log.Err(err))
	}

	if !verdict {
		logger.Error("Checks failed, nouveau would report an unknown chipset")
		os.Exit(1)
	}
	logger.Info("All checks passed, nouveau would detect the chipset")
}

func printBanner(logger *log.Logger, quiet bool) {
	if quiet {
		return
	}

	logger.Info("nvprobe - GeForce3 chipset detection validator",
		log.String("version", buildinfo.Version(version, commit, date)))
}
