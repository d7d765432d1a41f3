// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shell is the window and event shell of the ladder application.
//
// An App owns at most one window and the presentation surface bound to it.
// It moves through three states:
//
//	Uninitialized --Resumed--> Active --close, Escape, failure--> Terminated
//
// Only the Active state carries a window and surface. Terminated is final;
// every event handled after it is ignored.
//
// Run pulls events one at a time from an EventSource and hands them to the
// App until it terminates. Everything happens on the calling goroutine.
package shell

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Defaults for the window created on resume.
const (
	DefaultTitle  = "Ladder Application"
	DefaultWidth  = 800
	DefaultHeight = 600
)

// State is the lifecycle state of an App.
type State int

const (
	Uninitialized State = iota
	Active
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Active:
		return "active"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Mode selects when frames are drawn.
type Mode int

const (
	// Continuous redraws as fast as the event loop allows: every redraw
	// requests the next one.
	Continuous Mode = iota
	// OnDemand redraws only when the platform or a resize asks for it, and
	// refills the frame only after its size changed.
	OnDemand
)

func (m Mode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case OnDemand:
		return "ondemand"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the Mode named by s.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "continuous":
		return Continuous, nil
	case "ondemand", "on-demand":
		return OnDemand, nil
	}
	return 0, xerrors.Errorf("shell: unknown render mode %q", s)
}

// Options configure an App.
type Options struct {
	Title string
	// Width and Height are the initial logical window size.
	Width, Height int
	Mode          Mode
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}
