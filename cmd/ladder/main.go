// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ladder opens a window and fills it with a gradient until the window is
// closed or Escape is pressed.
//
// Usage:
//
//	ladder [-title title] [-width 800] [-height 600] [-mode continuous|ondemand]
//	       [-overflow wrap|clamp] [-log-format format] [-log-level level] [-stats]
//
// Exit status is 0 after a normal close, 1 if the window could not be
// created, 2 if presenting a frame failed, 3 if the window could not be
// resized and 64 for bad usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/ladder-app/ladder/frame"
	"github.com/ladder-app/ladder/internal/config"
	"github.com/ladder-app/ladder/internal/logging"
	"github.com/ladder-app/ladder/internal/telemetry"
	"github.com/ladder-app/ladder/shell"
	"github.com/ladder-app/ladder/shell/shinydriver"
	"go.uber.org/zap"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
)

const (
	exitOK      = 0
	exitSetup   = 1
	exitPresent = 2
	exitResize  = 3
	exitUsage   = 64
)

func main() {
	cfg, err := config.Parse("ladder", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(exitOK)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ladder: %v\n", err)
		os.Exit(exitUsage)
	}
	log, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ladder: %v\n", err)
		os.Exit(exitUsage)
	}

	code := exitSetup
	driver.Main(func(s screen.Screen) {
		code = run(context.Background(), cfg, shinydriver.New(s), log)
	})
	syncLog(log, os.Stderr)
	os.Exit(code)
}

// driverSource is what run needs from a platform binding.
type driverSource interface {
	shell.Platform
	shell.EventSource
}

// run drives the shell until it terminates and returns the exit status.
func run(ctx context.Context, cfg config.Config, d driverSource, log *zap.Logger) int {
	metrics, err := telemetry.New()
	if err != nil {
		log.Warn("frame statistics disabled", zap.Error(err))
	}

	r := &frame.Renderer{Gradient: frame.Gradient{Overflow: cfg.Overflow}}
	app := shell.New(d, r, cfg.WindowOptions(), log, metrics)
	err = shell.Run(ctx, d, app)

	if cfg.Stats {
		if s, serr := metrics.Summary(ctx); serr != nil {
			log.Warn("collecting frame statistics", zap.Error(serr))
		} else {
			log.Info("frame statistics",
				zap.Int64("frames", s.Frames),
				zap.Int64("resizes", s.Resizes),
				zap.Int64("present_failures", s.PresentFailures),
				zap.Duration("mean_fill", s.MeanFill()))
		}
	}

	shutdown(ctx, metrics, log)

	code := exitCode(err)
	if code == exitOK {
		log.Info("application exited successfully")
	} else {
		log.Error("application encountered an error", zap.Error(err), zap.Int("exit_code", code))
	}
	return code
}

type shutdowner interface {
	Shutdown(context.Context) error
}

func shutdown(ctx context.Context, m shutdowner, log *zap.Logger) {
	if err := m.Shutdown(ctx); err != nil {
		log.Warn("shutting down frame statistics", zap.Error(err))
	}
}

// syncLog flushes l and reports failures on w. Terminals and pipes reject
// fsync with EINVAL or ENOTTY; those are not failures.
func syncLog(l interface{ Sync() error }, w io.Writer) {
	err := l.Sync()
	if err == nil || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return
	}
	fmt.Fprintf(w, "ladder: flushing log: %v\n", err)
}

// exitCode maps a Run result to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var e *shell.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case shell.SetupError:
			return exitSetup
		case shell.PresentError:
			return exitPresent
		case shell.ResizeError:
			return exitResize
		}
	}
	return exitSetup
}
