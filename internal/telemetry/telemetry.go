// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package telemetry records frame statistics with OpenTelemetry metrics.
//
// Instruments live on an SDK MeterProvider whose only reader is a manual
// reader, so nothing is exported; Summary collects the current totals.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"golang.org/x/xerrors"
)

const scope = "github.com/ladder-app/ladder"

// Instrument names.
const (
	FramesName   = "ladder.frames"
	ResizesName  = "ladder.resizes"
	FailuresName = "ladder.present.failures"
	FillName     = "ladder.frame.fill"
)

// Metrics holds the instruments updated by the event shell.
type Metrics struct {
	provider *sdkmetric.MeterProvider
	reader   *sdkmetric.ManualReader

	frames   metric.Int64Counter
	resizes  metric.Int64Counter
	failures metric.Int64Counter
	fill     metric.Float64Histogram
}

// New creates a MeterProvider with a manual reader and registers the
// instruments on it.
func New() (*Metrics, error) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter(scope)

	m := &Metrics{provider: provider, reader: reader}
	var err error
	if m.frames, err = meter.Int64Counter(FramesName,
		metric.WithDescription("Frames filled and presented."),
		metric.WithUnit("{frame}")); err != nil {
		return nil, xerrors.Errorf("telemetry: %w", err)
	}
	if m.resizes, err = meter.Int64Counter(ResizesName,
		metric.WithDescription("Presentation surface reallocations."),
		metric.WithUnit("{resize}")); err != nil {
		return nil, xerrors.Errorf("telemetry: %w", err)
	}
	if m.failures, err = meter.Int64Counter(FailuresName,
		metric.WithDescription("Failed presentations."),
		metric.WithUnit("{failure}")); err != nil {
		return nil, xerrors.Errorf("telemetry: %w", err)
	}
	if m.fill, err = meter.Float64Histogram(FillName,
		metric.WithDescription("Time spent filling and presenting one frame."),
		metric.WithUnit("ms")); err != nil {
		return nil, xerrors.Errorf("telemetry: %w", err)
	}
	return m, nil
}

// Frame records one rendered frame that took d. A nil *Metrics records
// nothing, as do the other recording methods.
func (m *Metrics) Frame(ctx context.Context, d time.Duration, mode string) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("mode", mode))
	m.frames.Add(ctx, 1, attrs)
	m.fill.Record(ctx, float64(d)/float64(time.Millisecond), attrs)
}

// Resize records a surface reallocation.
func (m *Metrics) Resize(ctx context.Context) {
	if m == nil {
		return
	}
	m.resizes.Add(ctx, 1)
}

// PresentFailure records a failed presentation.
func (m *Metrics) PresentFailure(ctx context.Context) {
	if m == nil {
		return
	}
	m.failures.Add(ctx, 1)
}

// Stats is a snapshot of the recorded totals.
type Stats struct {
	Frames          int64
	Resizes         int64
	PresentFailures int64
	FillTotal       time.Duration
}

// MeanFill returns the average fill time per frame.
func (s Stats) MeanFill() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.FillTotal / time.Duration(s.Frames)
}

// Summary collects the current totals from the reader.
func (m *Metrics) Summary(ctx context.Context) (Stats, error) {
	var s Stats
	if m == nil {
		return s, nil
	}
	var rm metricdata.ResourceMetrics
	if err := m.reader.Collect(ctx, &rm); err != nil {
		return s, xerrors.Errorf("telemetry: collect: %w", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			switch data := md.Data.(type) {
			case metricdata.Sum[int64]:
				var total int64
				for _, dp := range data.DataPoints {
					total += dp.Value
				}
				switch md.Name {
				case FramesName:
					s.Frames = total
				case ResizesName:
					s.Resizes = total
				case FailuresName:
					s.PresentFailures = total
				}
			case metricdata.Histogram[float64]:
				if md.Name != FillName {
					continue
				}
				var ms float64
				for _, dp := range data.DataPoints {
					ms += dp.Sum
				}
				s.FillTotal = time.Duration(ms * float64(time.Millisecond))
			}
		}
	}
	return s, nil
}

// Shutdown releases the provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m == nil {
		return nil
	}
	return m.provider.Shutdown(ctx)
}
