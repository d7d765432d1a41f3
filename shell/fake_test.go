// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"image"

	"github.com/ladder-app/ladder/frame"
)

// fakePlatform records every call made on it and on the windows and surfaces
// it creates.
type fakePlatform struct {
	windows    []*fakeWindow
	windowErr  error
	surfaceErr error
	resizeErr  error
	presentErr error
	calls      []string
}

func (p *fakePlatform) NewWindow(opts WindowOptions) (Window, error) {
	p.calls = append(p.calls, "new window")
	if p.windowErr != nil {
		return nil, p.windowErr
	}
	// Physical size equals logical size: a scale factor of 1.
	w := &fakeWindow{p: p, opts: opts, width: opts.Width, height: opts.Height}
	p.windows = append(p.windows, w)
	return w, nil
}

type fakeWindow struct {
	p             *fakePlatform
	opts          WindowOptions
	width, height int
	redraws       int
	released      bool
	surface       *fakeSurface
}

func (w *fakeWindow) PhysicalSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) NewSurface(width, height int) (Surface, error) {
	w.p.calls = append(w.p.calls, "new surface")
	if w.p.surfaceErr != nil {
		return nil, w.p.surfaceErr
	}
	w.surface = &fakeSurface{p: w.p, m: frame.New(width, height)}
	return w.surface, nil
}

func (w *fakeWindow) RequestRedraw() { w.redraws++ }

func (w *fakeWindow) Release() {
	w.p.calls = append(w.p.calls, "release window")
	w.released = true
}

type fakeSurface struct {
	p        *fakePlatform
	m        *image.RGBA
	resizes  int
	presents int
	released bool
}

func (s *fakeSurface) Frame() *image.RGBA { return s.m }

func (s *fakeSurface) Present() error {
	s.presents++
	return s.p.presentErr
}

func (s *fakeSurface) Size() (int, int) { return s.m.Bounds().Dx(), s.m.Bounds().Dy() }

func (s *fakeSurface) Resize(width, height int) error {
	s.resizes++
	if s.p.resizeErr != nil {
		return s.p.resizeErr
	}
	s.m = frame.Resize(s.m, width, height)
	return nil
}

func (s *fakeSurface) Release() {
	s.p.calls = append(s.p.calls, "release surface")
	s.released = true
}

// script is an EventSource replaying a fixed list of events.
type script []Event

func (s *script) NextEvent() Event {
	if len(*s) == 0 {
		return nil
	}
	ev := (*s)[0]
	*s = (*s)[1:]
	return ev
}
