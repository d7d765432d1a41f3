// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import "fmt"

// An Event is something delivered to an App by its environment.
type Event interface {
	isEvent()
}

// Resumed is delivered when the application may create its window. Only the
// first one has an effect.
type Resumed struct{}

// CloseRequested is delivered when the user or the OS asks to close the
// window.
type CloseRequested struct{}

// RedrawRequested asks for the window contents to be drawn.
type RedrawRequested struct{}

// Resized reports the window's new physical size in pixels.
type Resized struct {
	Width, Height int
}

// Key identifies a physical key.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyUnknown:
		return "unknown"
	case KeyEscape:
		return "escape"
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// KeyInput reports a key press or release. Escape ends the application in
// either direction.
type KeyInput struct {
	Key     Key
	Pressed bool
}

// Fault carries an error reported by the platform while presenting.
type Fault struct {
	Err error
}

// Other wraps any platform event the shell has no use for.
type Other struct {
	Value interface{}
}

func (Resumed) isEvent()         {}
func (CloseRequested) isEvent()  {}
func (RedrawRequested) isEvent() {}
func (Resized) isEvent()         {}
func (KeyInput) isEvent()        {}
func (Fault) isEvent()           {}
func (Other) isEvent()           {}
