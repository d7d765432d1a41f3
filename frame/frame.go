// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame fills RGBA pixel buffers with the ladder gradient.
//
// A frame is an *image.RGBA whose pixels are written row-major from the
// top-left corner, four bytes per pixel in red, green, blue, alpha order.
// Every fill overwrites the whole frame.
//
// The gradient is
//
//	r = x/h, g = y/h, b = 0.5, a = 1
//
// quantized with floor(channel*255). The height normalizes both axes, so on
// frames wider than they are tall the red channel exceeds 1 towards the right
// edge. What happens then is governed by an Overflow policy.
package frame

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/xerrors"
)

// Overflow selects how quantized channel values outside [0, 255] are stored.
type Overflow int

const (
	// Wrap truncates and keeps the low eight bits of the integer value.
	Wrap Overflow = iota
	// Clamp saturates to [0, 255].
	Clamp
)

func (o Overflow) String() string {
	switch o {
	case Wrap:
		return "wrap"
	case Clamp:
		return "clamp"
	}
	return fmt.Sprintf("Overflow(%d)", int(o))
}

// ParseOverflow returns the Overflow named by s.
func ParseOverflow(s string) (Overflow, error) {
	switch s {
	case "wrap":
		return Wrap, nil
	case "clamp":
		return Clamp, nil
	}
	return 0, xerrors.Errorf("frame: unknown overflow policy %q", s)
}

// sample is a color whose channels are already scaled to [0, 255] but not
// yet quantized.
type sample struct {
	r, g, b, a float64
}

// rgba quantizes s to 8 bits per channel.
func (s sample) rgba(o Overflow) color.RGBA {
	return color.RGBA{
		R: quantize(s.r, o),
		G: quantize(s.g, o),
		B: quantize(s.b, o),
		A: quantize(s.a, o),
	}
}

// quantize floors a channel scaled to [0, 255] and applies o.
func quantize(v float64, o Overflow) uint8 {
	v = math.Floor(v)
	if o == Clamp {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
	}
	// Converting an out of range float straight to uint8 is implementation
	// defined; going through int64 makes the wrap well defined.
	return uint8(int64(v))
}

// Gradient is the ladder frame renderer's color function.
type Gradient struct {
	Overflow Overflow
}

// sample computes the channels as 255*x/h rather than (x/h)*255 so that the
// truncation lands on the exact integer whenever the quotient is one.
func (g Gradient) sample(x, y, h int) sample {
	return sample{
		r: float64(255*x) / float64(h),
		g: float64(255*y) / float64(h),
		b: 0.5 * 255,
		a: 255,
	}
}

// At returns the quantized color of the pixel at (x, y) in a frame of height
// h.
func (g Gradient) At(x, y, h int) color.RGBA {
	return g.sample(x, y, h).rgba(g.Overflow)
}

// Fill overwrites every pixel of m. Coordinates are relative to m's
// top-left corner.
func (g Gradient) Fill(m *image.RGBA) {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	for y := 0; y < h; y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+4*w]
		for x := 0; x < w; x++ {
			c := g.At(x, y, h)
			p := row[4*x : 4*x+4 : 4*x+4]
			p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
		}
	}
}

// FillBytes fills pix, a tightly packed w×h frame, pixel index by pixel
// index. It reports an error rather than writing when len(pix) != 4*w*h.
func (g Gradient) FillBytes(pix []byte, w, h int) error {
	if w < 0 || h < 0 {
		return xerrors.Errorf("frame: negative size %dx%d", w, h)
	}
	if len(pix) != 4*w*h {
		return xerrors.Errorf("frame: buffer holds %d bytes, %dx%d needs %d", len(pix), w, h, 4*w*h)
	}
	for i := 0; i < w*h; i++ {
		c := g.At(i%w, i/w, h)
		p := pix[4*i : 4*i+4 : 4*i+4]
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
	}
	return nil
}

// New allocates a tightly packed w×h frame. Non-positive sizes yield an
// empty frame.
func New(w, h int) *image.RGBA {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// Resize returns a frame of size w×h. m itself is returned when it already
// has that size; otherwise a new frame is allocated and m's contents are
// discarded.
func Resize(m *image.RGBA, w, h int) *image.RGBA {
	if m != nil && m.Bounds().Dx() == w && m.Bounds().Dy() == h {
		return m
	}
	return New(w, h)
}
