// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shinydriver runs the ladder shell on a shiny screen.
//
// A Driver is both the shell's Platform and its EventSource. The first event
// it delivers is shell.Resumed; after the shell has created its window, the
// window's events are translated:
//
//	lifecycle.Event to StageDead  shell.CloseRequested
//	paint.Event                   shell.RedrawRequested
//	size.Event                    shell.Resized, in pixels
//	key.Event                     shell.KeyInput
//	error                         shell.Fault
//	anything else                 shell.Other
//
// Redraw requests are coalesced: at most one requested paint.Event is queued
// at a time, and OS paints arriving while it is queued are dropped.
package shinydriver // import "github.com/ladder-app/ladder/shell/shinydriver"

import (
	"image"

	"github.com/ladder-app/ladder/shell"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/xerrors"
)

// Driver adapts a screen.Screen to the shell. It supports a single window.
type Driver struct {
	s       screen.Screen
	win     *window
	resumed bool
}

var (
	_ shell.Platform    = (*Driver)(nil)
	_ shell.EventSource = (*Driver)(nil)
)

// New returns a Driver for s.
func New(s screen.Screen) *Driver {
	return &Driver{s: s}
}

// NewWindow creates the shiny window. Its physical size is taken to be the
// requested size until the first size.Event says otherwise.
func (d *Driver) NewWindow(opts shell.WindowOptions) (shell.Window, error) {
	if d.win != nil {
		return nil, xerrors.New("shinydriver: window already created")
	}
	w, err := d.s.NewWindow(&screen.NewWindowOptions{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
	})
	if err != nil {
		return nil, xerrors.Errorf("shinydriver: new window: %w", err)
	}
	d.win = &window{s: d.s, w: w, width: opts.Width, height: opts.Height}
	return d.win, nil
}

// NextEvent returns shell.Resumed on its first call and the next translated
// window event afterwards. It returns nil when there is no live window to
// read from.
func (d *Driver) NextEvent() shell.Event {
	if !d.resumed {
		d.resumed = true
		return shell.Resumed{}
	}
	for d.win != nil && !d.win.released {
		if ev, ok := d.win.translate(d.win.w.NextEvent()); ok {
			return ev
		}
	}
	return nil
}

type window struct {
	s             screen.Screen
	w             screen.Window
	width, height int
	released      bool
	// pending is set while a paint event sent by RequestRedraw is queued.
	// At most one such event is ever in the queue.
	pending bool
}

// translate converts a shiny event. It reports false for events that are
// dropped: an OS paint arriving while a requested paint is still queued,
// since that paint will redraw anyway.
func (w *window) translate(e interface{}) (shell.Event, bool) {
	switch e := e.(type) {
	case lifecycle.Event:
		if e.To == lifecycle.StageDead {
			return shell.CloseRequested{}, true
		}
	case paint.Event:
		if e.External {
			if w.pending {
				return nil, false
			}
		} else {
			w.pending = false
		}
		return shell.RedrawRequested{}, true
	case size.Event:
		w.width, w.height = e.WidthPx, e.HeightPx
		return shell.Resized{Width: e.WidthPx, Height: e.HeightPx}, true
	case key.Event:
		k := shell.KeyUnknown
		if e.Code == key.CodeEscape {
			k = shell.KeyEscape
		}
		return shell.KeyInput{Key: k, Pressed: e.Direction == key.DirPress}, true
	case error:
		return shell.Fault{Err: e}, true
	}
	return shell.Other{Value: e}, true
}

func (w *window) PhysicalSize() (int, int) { return w.width, w.height }

func (w *window) NewSurface(width, height int) (shell.Surface, error) {
	s := &surface{s: w.s, w: w.w}
	if err := s.Resize(width, height); err != nil {
		return nil, err
	}
	return s, nil
}

// RequestRedraw queues a paint event behind the events already pending,
// unless a requested paint is queued already.
func (w *window) RequestRedraw() {
	if w.released || w.pending {
		return
	}
	w.pending = true
	w.w.Send(paint.Event{})
}

func (w *window) Release() {
	if !w.released {
		w.released = true
		w.w.Release()
	}
}

// surface is a screen.Buffer uploaded straight to the window. A surface with
// no area has no buffer.
type surface struct {
	s             screen.Screen
	w             screen.Window
	buf           screen.Buffer
	width, height int
	released      bool
}

func (s *surface) Frame() *image.RGBA {
	if s.buf == nil {
		return nil
	}
	return s.buf.RGBA()
}

func (s *surface) Size() (int, int) { return s.width, s.height }

// Resize replaces the buffer. The old buffer is kept if allocation fails.
func (s *surface) Resize(width, height int) error {
	if s.released {
		return xerrors.New("shinydriver: resize of released surface")
	}
	var buf screen.Buffer
	if width > 0 && height > 0 {
		b, err := s.s.NewBuffer(image.Point{X: width, Y: height})
		if err != nil {
			return xerrors.Errorf("shinydriver: new %dx%d buffer: %w", width, height, err)
		}
		buf = b
	}
	if s.buf != nil {
		s.buf.Release()
	}
	s.buf, s.width, s.height = buf, width, height
	return nil
}

func (s *surface) Present() error {
	if s.released {
		return xerrors.New("shinydriver: present of released surface")
	}
	if s.buf != nil {
		s.w.Upload(image.Point{}, s.buf, s.buf.Bounds())
	}
	s.w.Publish()
	return nil
}

func (s *surface) Release() {
	if s.released {
		return
	}
	s.released = true
	if s.buf != nil {
		s.buf.Release()
		s.buf = nil
	}
}
