// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import "fmt"

// Kind classifies App failures.
type Kind int

const (
	// SetupError is a failure to create the window or its first surface.
	SetupError Kind = iota + 1
	// ResizeError is a failure to reallocate the surface after a resize.
	ResizeError
	// PresentError is a failed presentation. The App has shut down cleanly
	// by the time it is reported.
	PresentError
)

func (k Kind) String() string {
	switch k {
	case SetupError:
		return "setup"
	case ResizeError:
		return "resize"
	case PresentError:
		return "present"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by App.Handle and Run.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
