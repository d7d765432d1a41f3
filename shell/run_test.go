// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"context"
	"errors"
	"testing"
)

func TestRun(t *testing.T) {
	p := &fakePlatform{}
	a, _ := newTestApp(p, Continuous)
	src := &script{Resumed{}, Resized{400, 300}, RedrawRequested{}, CloseRequested{}, RedrawRequested{}}
	if err := Run(context.Background(), src, a); err != nil {
		t.Fatal(err)
	}
	if a.State() != Terminated {
		t.Errorf("state = %v, want terminated", a.State())
	}
	if len(*src) != 1 {
		t.Errorf("%d events left, want 1: the loop must stop at termination", len(*src))
	}
}

func TestRunSourceExhausted(t *testing.T) {
	p := &fakePlatform{}
	a, _ := newTestApp(p, Continuous)
	if err := Run(context.Background(), &script{Resumed{}}, a); err != nil {
		t.Fatal(err)
	}
	if a.State() != Terminated || !p.windows[0].released {
		t.Errorf("state = %v, window released = %v; want closed app", a.State(), p.windows[0].released)
	}
}

func TestRunError(t *testing.T) {
	p := &fakePlatform{presentErr: errors.New("surface lost")}
	a, _ := newTestApp(p, Continuous)
	err := Run(context.Background(), &script{Resumed{}, RedrawRequested{}, CloseRequested{}}, a)
	var e *Error
	if !errors.As(err, &e) || e.Kind != PresentError {
		t.Fatalf("Run = %v, want present error", err)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &fakePlatform{}
	a, _ := newTestApp(p, Continuous)
	if err := Run(ctx, &script{Resumed{}}, a); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
	if len(p.windows) != 0 {
		t.Error("events handled after cancellation")
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Continuous, OnDemand} {
		if got, err := ParseMode(m.String()); err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m, got, err)
		}
	}
	if _, err := ParseMode("lazy"); err == nil {
		t.Error("ParseMode accepted an unknown mode")
	}
}
