// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"context"
	"time"

	"github.com/ladder-app/ladder/frame"
	"github.com/ladder-app/ladder/internal/telemetry"
	"go.uber.org/zap"
)

// An App routes events to window lifecycle, resize and render actions.
// It is not safe for concurrent use; all events must be handled by one
// goroutine.
type App struct {
	opts     Options
	platform Platform
	renderer *frame.Renderer
	log      *zap.Logger
	metrics  *telemetry.Metrics
	state    state
}

// state is one of uninitialized, *active or terminated.
type state interface {
	State() State
}

type uninitialized struct{}

type active struct {
	win  Window
	surf Surface
	// dirty is set while the frame does not hold the gradient for the
	// current surface size.
	dirty bool
}

type terminated struct{}

func (uninitialized) State() State { return Uninitialized }
func (*active) State() State       { return Active }
func (terminated) State() State    { return Terminated }

// New returns an App in the Uninitialized state. A nil log discards log
// output; a nil metrics records nothing.
func New(p Platform, r *frame.Renderer, opts Options, log *zap.Logger, metrics *telemetry.Metrics) *App {
	if r == nil {
		r = new(frame.Renderer)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		opts:     opts.withDefaults(),
		platform: p,
		renderer: r,
		log:      log,
		metrics:  metrics,
		state:    uninitialized{},
	}
}

// State returns the current lifecycle state.
func (a *App) State() State { return a.state.State() }

// Window returns the window while the App is Active, and nil otherwise.
func (a *App) Window() Window {
	if s, ok := a.state.(*active); ok {
		return s.win
	}
	return nil
}

// Surface returns the presentation surface while the App is Active, and nil
// otherwise.
func (a *App) Surface() Surface {
	if s, ok := a.state.(*active); ok {
		return s.surf
	}
	return nil
}

// Handle processes a single event. Failures are returned as *Error; the
// caller decides whether to abort. After a PresentError the App is already
// Terminated.
func (a *App) Handle(ctx context.Context, ev Event) error {
	switch s := a.state.(type) {
	case uninitialized:
		if _, ok := ev.(Resumed); ok {
			return a.resume()
		}
		return nil
	case *active:
		return a.handleActive(ctx, s, ev)
	default:
		return nil
	}
}

func (a *App) resume() error {
	win, err := a.platform.NewWindow(WindowOptions{
		Title:   a.opts.Title,
		Width:   a.opts.Width,
		Height:  a.opts.Height,
		Visible: true,
	})
	if err != nil {
		return &Error{Kind: SetupError, Op: "create window", Err: err}
	}
	w, h := win.PhysicalSize()
	surf, err := win.NewSurface(w, h)
	if err != nil {
		win.Release()
		return &Error{Kind: SetupError, Op: "create surface", Err: err}
	}
	a.state = &active{win: win, surf: surf, dirty: true}
	a.log.Info("window created",
		zap.String("title", a.opts.Title),
		zap.Int("width", a.opts.Width),
		zap.Int("height", a.opts.Height),
		zap.Int("physical_width", w),
		zap.Int("physical_height", h),
		zap.Stringer("mode", a.opts.Mode))
	win.RequestRedraw()
	return nil
}

func (a *App) handleActive(ctx context.Context, s *active, ev Event) error {
	switch ev := ev.(type) {
	case CloseRequested:
		a.log.Info("close requested")
		a.terminate(s)
	case RedrawRequested:
		return a.redraw(ctx, s)
	case Resized:
		return a.resize(ctx, s, ev.Width, ev.Height)
	case KeyInput:
		if ev.Key == KeyEscape {
			a.log.Info("escape pressed", zap.Bool("pressed", ev.Pressed))
			a.terminate(s)
		}
	case Fault:
		return a.presentFailed(ctx, s, ev.Err)
	}
	return nil
}

func (a *App) redraw(ctx context.Context, s *active) error {
	start := time.Now()
	fill := a.opts.Mode == Continuous || s.dirty
	var err error
	if fill {
		err = a.renderer.Render(s.surf)
	} else {
		err = a.renderer.Present(s.surf)
	}
	if err != nil {
		return a.presentFailed(ctx, s, err)
	}
	if fill {
		s.dirty = false
		a.metrics.Frame(ctx, time.Since(start), a.opts.Mode.String())
	}
	if a.opts.Mode == Continuous {
		s.win.RequestRedraw()
	}
	return nil
}

func (a *App) resize(ctx context.Context, s *active, w, h int) error {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if cw, ch := s.surf.Size(); cw == w && ch == h {
		return nil
	}
	if err := s.surf.Resize(w, h); err != nil {
		a.log.Error("surface resize failed", zap.Int("width", w), zap.Int("height", h), zap.Error(err))
		a.terminate(s)
		return &Error{Kind: ResizeError, Op: "resize surface", Err: err}
	}
	s.dirty = true
	a.metrics.Resize(ctx)
	a.log.Debug("surface resized", zap.Int("width", w), zap.Int("height", h))
	s.win.RequestRedraw()
	return nil
}

func (a *App) presentFailed(ctx context.Context, s *active, err error) error {
	a.log.Error("presentation failed", zap.Error(err))
	a.metrics.PresentFailure(ctx)
	a.terminate(s)
	return &Error{Kind: PresentError, Op: "present", Err: err}
}

// terminate releases the surface before the window it belongs to.
func (a *App) terminate(s *active) {
	s.surf.Release()
	s.win.Release()
	a.state = terminated{}
}

// Close terminates the App, releasing its window and surface if it is
// Active. It is a no-op otherwise.
func (a *App) Close() {
	switch s := a.state.(type) {
	case *active:
		a.terminate(s)
	case uninitialized:
		a.state = terminated{}
	}
}
