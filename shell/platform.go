// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import "github.com/ladder-app/ladder/frame"

// A Platform creates native windows.
type Platform interface {
	NewWindow(opts WindowOptions) (Window, error)
}

// WindowOptions describe a window to create.
type WindowOptions struct {
	Title string
	// Width and Height are in logical units; the platform converts them to
	// physical pixels.
	Width, Height int
	Visible       bool
}

// A Window is a native window.
type Window interface {
	// PhysicalSize returns the last known size of the window in pixels.
	PhysicalSize() (width, height int)

	// NewSurface allocates a presentation surface of the given size for
	// the window. The window must outlive the surface.
	NewSurface(width, height int) (Surface, error)

	// RequestRedraw arranges for a RedrawRequested event to be delivered.
	RequestRedraw()

	Release()
}

// A Surface is a pixel buffer bound to a window that can be presented on it.
type Surface interface {
	frame.Target

	// Size returns the surface size in pixels.
	Size() (width, height int)

	// Resize changes the surface geometry and reallocates its frame. After
	// a successful Resize, Frame has exactly width×height pixels.
	Resize(width, height int) error

	Release()
}

// An EventSource delivers events one at a time. NextEvent blocks until an
// event is available and returns nil once no more events will arrive.
type EventSource interface {
	NextEvent() Event
}
