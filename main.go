// Package main implements the main entry point for an instruction accurate 6502 emulator
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/m6502emu/internal/cli"
	"github.com/retroenv/m6502emu/internal/config"
	"github.com/retroenv/m6502emu/internal/emulator"
	"github.com/retroenv/m6502emu/internal/step"
	"github.com/retroenv/retrogolib/app"
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
		logger := config.CreateLogger(opts.Flags)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			cli.PrintBanner(logger, opts, version, commit, date)
			if msg := usageErr.Error(); msg != "" {
				logger.Error(msg)
			}
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Flags)
	cli.PrintBanner(logger, opts, version, commit, date)

	var trigger step.Trigger
	if opts.Step {
		trigger, err = step.New(os.Stdin)
		if err != nil {
			logger.Fatal("Creating step trigger failed", log.Err(err))
		}
		defer func() { _ = trigger.Close() }()
	}

	emu := emulator.New(logger)
	if _, err := emu.Execute(ctx, opts, trigger); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		if trigger != nil {
			_ = trigger.Close()
		}
		os.Exit(1)
	}
}
