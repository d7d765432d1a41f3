// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the ladder command's settings and parses them from
// command-line flags.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ladder-app/ladder/frame"
	"github.com/ladder-app/ladder/internal/logging"
	"github.com/ladder-app/ladder/shell"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"
)

// Config is the complete set of command settings.
type Config struct {
	Title         string
	Width, Height int
	Mode          shell.Mode
	Overflow      frame.Overflow
	LogFormat     logging.Format
	LogLevel      zapcore.Level
	Stats         bool
}

// Default returns the settings used when no flags are given.
func Default() Config {
	return Config{
		Title:     shell.DefaultTitle,
		Width:     shell.DefaultWidth,
		Height:    shell.DefaultHeight,
		Mode:      shell.Continuous,
		Overflow:  frame.Wrap,
		LogFormat: logging.Console,
		LogLevel:  zapcore.InfoLevel,
		Stats:     true,
	}
}

// WindowOptions returns the shell options derived from c.
func (c Config) WindowOptions() shell.Options {
	return shell.Options{
		Title:  c.Title,
		Width:  c.Width,
		Height: c.Height,
		Mode:   c.Mode,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return xerrors.New("config: empty window title")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return xerrors.Errorf("config: window size %dx%d is not positive", c.Width, c.Height)
	}
	return nil
}

// Parse parses args (without the program name) into a Config. Usage and
// errors are written to out. flag.ErrHelp is returned for -h.
func Parse(name string, args []string, out io.Writer) (Config, error) {
	c := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "usage: %s [flags]\n\n", name)
		fmt.Fprintf(out, "Opens a window and draws a gradient into it until the window is closed\nor Escape is pressed.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&c.Title, "title", c.Title, "window `title`")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in logical units")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in logical units")
	fs.Var((*modeValue)(&c.Mode), "mode", "render `mode`: continuous or ondemand")
	fs.Var((*overflowValue)(&c.Overflow), "overflow", "out of range channel `policy`: wrap or clamp")
	fs.Var((*formatValue)(&c.LogFormat), "log-format", "log `format`: "+formatNames())
	fs.Var((*levelValue)(&c.LogLevel), "log-level", "minimum log `level`: debug, info, warn or error")
	fs.BoolVar(&c.Stats, "stats", c.Stats, "log frame statistics on exit")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return c, xerrors.Errorf("config: unexpected arguments %q", fs.Args())
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func formatNames() string {
	names := make([]string, len(logging.Formats))
	for i, f := range logging.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

type modeValue shell.Mode

func (v *modeValue) String() string { return shell.Mode(*v).String() }

func (v *modeValue) Set(s string) error {
	m, err := shell.ParseMode(s)
	if err != nil {
		return err
	}
	*v = modeValue(m)
	return nil
}

type overflowValue frame.Overflow

func (v *overflowValue) String() string { return frame.Overflow(*v).String() }

func (v *overflowValue) Set(s string) error {
	o, err := frame.ParseOverflow(s)
	if err != nil {
		return err
	}
	*v = overflowValue(o)
	return nil
}

type formatValue logging.Format

func (v *formatValue) String() string { return string(*v) }

func (v *formatValue) Set(s string) error {
	f, err := logging.ParseFormat(s)
	if err != nil {
		return err
	}
	*v = formatValue(f)
	return nil
}

type levelValue zapcore.Level

func (v *levelValue) String() string { return zapcore.Level(*v).String() }

func (v *levelValue) Set(s string) error {
	l, err := logging.ParseLevel(s)
	if err != nil {
		return err
	}
	*v = levelValue(l)
	return nil
}
