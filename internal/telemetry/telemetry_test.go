// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSummary(t *testing.T) {
	ctx := context.Background()
	m, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer m.Shutdown(ctx)

	m.Frame(ctx, 2*time.Millisecond, "continuous")
	m.Frame(ctx, 4*time.Millisecond, "continuous")
	m.Frame(ctx, 6*time.Millisecond, "ondemand")
	m.Resize(ctx)
	m.PresentFailure(ctx)

	got, err := m.Summary(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := Stats{Frames: 3, Resizes: 1, PresentFailures: 1, FillTotal: 12 * time.Millisecond}
	approx := cmpopts.EquateApprox(0, float64(time.Microsecond))
	if diff := cmp.Diff(want, got, cmp.Transformer("float", func(d time.Duration) float64 { return float64(d) }), approx); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}
	if got, want := got.MeanFill(), 4*time.Millisecond; got-want > time.Microsecond || want-got > time.Microsecond {
		t.Errorf("MeanFill = %v, want %v", got, want)
	}
}

func TestEmptySummary(t *testing.T) {
	ctx := context.Background()
	m, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer m.Shutdown(ctx)
	got, err := m.Summary(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != (Stats{}) {
		t.Errorf("Summary = %+v, want zero", got)
	}
	if got.MeanFill() != 0 {
		t.Errorf("MeanFill of no frames = %v", got.MeanFill())
	}
}

func TestNilMetrics(t *testing.T) {
	ctx := context.Background()
	var m *Metrics
	m.Frame(ctx, time.Millisecond, "continuous")
	m.Resize(ctx)
	m.PresentFailure(ctx)
	if s, err := m.Summary(ctx); err != nil || s != (Stats{}) {
		t.Errorf("nil Summary = %+v, %v", s, err)
	}
	if err := m.Shutdown(ctx); err != nil {
		t.Error(err)
	}
}
