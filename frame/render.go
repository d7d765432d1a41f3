// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"image"

	"golang.org/x/xerrors"
)

// A Target is something a frame can be rendered into and presented from,
// such as a window's presentation surface.
type Target interface {
	// Frame returns the pixels to draw into. It may be nil or empty when the
	// target has no area.
	Frame() *image.RGBA

	// Present displays the current contents of Frame.
	Present() error
}

// Renderer draws the gradient into a Target and presents it.
type Renderer struct {
	Gradient Gradient
}

// Render fills t's frame and presents it. Presentation errors are returned
// wrapped; the frame has been fully written by then.
func (r *Renderer) Render(t Target) error {
	if m := t.Frame(); m != nil {
		r.Gradient.Fill(m)
	}
	return r.Present(t)
}

// Present presents t without touching its pixels.
func (r *Renderer) Present(t Target) error {
	if err := t.Present(); err != nil {
		return xerrors.Errorf("present frame: %w", err)
	}
	return nil
}
