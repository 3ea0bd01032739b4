// Package main implements a NES CPU emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/nesgoemu/internal/cli"
	"github.com/retroenv/nesgoemu/internal/config"
	"github.com/retroenv/nesgoemu/internal/emulator"
	"github.com/retroenv/nesgoemu/internal/options"
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
			printBanner(opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(opts)

	if err := run(ctx, logger, opts); err != nil {
		// handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Execution cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner(opts options.Program) {
	if opts.Quiet {
		return
	}
	fmt.Println("[------------------------------]")
	fmt.Println("[ nesgoemu - NES CPU emulator  ]")
	fmt.Printf("[------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	emu := emulator.New(logger, opts, os.Stdout)

	if err := emu.Load(opts.Input); err != nil {
		return fmt.Errorf("loading '%s': %w", opts.Input, err)
	}

	logger.Info("Starting emulation",
		log.String("file", opts.Input))

	if err := emu.Run(ctx); err != nil {
		return fmt.Errorf("running emulation: %w", err)
	}

	c := emu.CPU()
	logger.Info("Emulation stopped",
		log.Hex("pc", c.PC),
		log.Uint8("a", c.A),
		log.Uint8("x", c.X),
		log.Uint8("y", c.Y),
		log.Uint8("sp", c.SP),
		log.Int("cycles", int(c.Cycles())),
	)
	return nil
}
