// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging builds the application's zap logger.
//
// Code logs through a *zap.Logger. Where the lines end up is chosen by a
// Format: zap's own console and JSON encoders, or a bridge core that hands
// every entry to go-kit's logfmt logger, logrus, zerolog or a logr sink.
package logging

import (
	"io"
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"
)

// Format names a log sink.
type Format string

const (
	Console Format = "console"
	JSON    Format = "json"
	Logfmt  Format = "logfmt"
	Logrus  Format = "logrus"
	Zerolog Format = "zerolog"
	Logr    Format = "logr"
)

// Formats lists the accepted formats.
var Formats = []Format{Console, JSON, Logfmt, Logrus, Zerolog, Logr}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", xerrors.Errorf("logging: unknown format %q", s)
}

// ParseLevel returns the zap level named by s ("debug", "info", ...).
func ParseLevel(s string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, xerrors.Errorf("logging: %w", err)
	}
	return l, nil
}

// New returns a logger writing entries at level and above to w in format f.
// A nil w means os.Stderr.
func New(f Format, level zapcore.Level, w io.Writer) (*zap.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	enab := zap.NewAtomicLevelAt(level)
	ws := zapcore.Lock(zapcore.AddSync(w))

	var core zapcore.Core
	switch f {
	case Console:
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), ws, enab)
	case JSON:
		core = zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), ws, enab)
	case Logfmt:
		core = newBridge(enab, newGokitSink(ws))
	case Logrus:
		core = newBridge(enab, newLogrusSink(ws))
	case Zerolog:
		core = newBridge(enab, newZerologSink(ws))
	case Logr:
		core = newBridge(enab, newLogrSink(ws, level))
	default:
		return nil, xerrors.Errorf("logging: unknown format %q", f)
	}
	return zap.New(core), nil
}

// A sink receives one flattened entry. Fields are sorted by key.
type sink interface {
	write(ent zapcore.Entry, fields []field) error
}

type field struct {
	key   string
	value interface{}
}

// bridge is a zapcore.Core that flattens fields and hands entries to a sink.
type bridge struct {
	zapcore.LevelEnabler
	sink   sink
	fields []zapcore.Field
}

var _ zapcore.Core = (*bridge)(nil)

func newBridge(enab zapcore.LevelEnabler, s sink) *bridge {
	return &bridge{LevelEnabler: enab, sink: s}
}

func (b *bridge) With(fields []zapcore.Field) zapcore.Core {
	b2 := *b
	if len(fields) > 0 {
		b2.fields = make([]zapcore.Field, len(b.fields), len(b.fields)+len(fields))
		copy(b2.fields, b.fields)
		b2.fields = append(b2.fields, fields...)
	}
	return &b2
}

func (b *bridge) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if b.Enabled(ent.Level) {
		return ce.AddCore(ent, b)
	}
	return ce
}

func (b *bridge) Write(ent zapcore.Entry, fs []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range b.fields {
		f.AddTo(enc)
	}
	for _, f := range fs {
		f.AddTo(enc)
	}
	if ent.LoggerName != "" {
		enc.Fields["logger"] = ent.LoggerName
	}
	flat := make([]field, 0, len(enc.Fields))
	for k, v := range enc.Fields {
		flat = append(flat, field{k, v})
	}
	sort.Slice(flat, func(i, j int) bool { return flat[i].key < flat[j].key })
	return b.sink.write(ent, flat)
}

func (b *bridge) Sync() error { return nil }
