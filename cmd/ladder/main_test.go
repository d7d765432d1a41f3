// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/ladder-app/ladder/frame"
	"github.com/ladder-app/ladder/internal/config"
	"github.com/ladder-app/ladder/shell"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, exitOK},
		{&shell.Error{Kind: shell.SetupError, Op: "create window", Err: errors.New("x")}, exitSetup},
		{&shell.Error{Kind: shell.PresentError, Op: "present", Err: errors.New("x")}, exitPresent},
		{&shell.Error{Kind: shell.ResizeError, Op: "resize surface", Err: errors.New("x")}, exitResize},
		{context.Canceled, exitSetup},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

// scripted is a platform whose single window closes after one redraw.
type scripted struct {
	events     []shell.Event
	presentErr error
}

func (p *scripted) NewWindow(opts shell.WindowOptions) (shell.Window, error) {
	return &scriptedWindow{p: p, w: opts.Width, h: opts.Height}, nil
}

func (p *scripted) NextEvent() shell.Event {
	if len(p.events) == 0 {
		return nil
	}
	ev := p.events[0]
	p.events = p.events[1:]
	return ev
}

type scriptedWindow struct {
	p    *scripted
	w, h int
}

func (w *scriptedWindow) PhysicalSize() (int, int) { return w.w, w.h }
func (w *scriptedWindow) RequestRedraw()           {}
func (w *scriptedWindow) Release()                 {}

func (w *scriptedWindow) NewSurface(width, height int) (shell.Surface, error) {
	return &scriptedSurface{p: w.p, m: frame.New(width, height)}, nil
}

type scriptedSurface struct {
	p *scripted
	m *image.RGBA
}

func (s *scriptedSurface) Frame() *image.RGBA { return s.m }
func (s *scriptedSurface) Present() error     { return s.p.presentErr }
func (s *scriptedSurface) Size() (int, int)   { return s.m.Bounds().Dx(), s.m.Bounds().Dy() }
func (s *scriptedSurface) Release()           {}

func (s *scriptedSurface) Resize(width, height int) error {
	s.m = frame.Resize(s.m, width, height)
	return nil
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		presentErr error
		wantCode   int
		wantMsg    string
	}{
		{"close", nil, exitOK, "application exited successfully"},
		{"present failure", errors.New("surface lost"), exitPresent, "application encountered an error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scripted{
				events: []shell.Event{
					shell.Resumed{},
					shell.Resized{Width: 40, Height: 30},
					shell.RedrawRequested{},
					shell.CloseRequested{},
				},
				presentErr: tt.presentErr,
			}
			core, logs := observer.New(zapcore.InfoLevel)
			code := run(context.Background(), config.Default(), p, zap.New(core))
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if logs.FilterMessage(tt.wantMsg).Len() != 1 {
				t.Errorf("no %q log line", tt.wantMsg)
			}
			stats := logs.FilterMessage("frame statistics").All()
			if len(stats) != 1 {
				t.Fatalf("%d statistics lines, want 1", len(stats))
			}
			if got := stats[0].ContextMap()["resizes"]; got != int64(1) {
				t.Errorf("resizes = %v, want 1", got)
			}
		})
	}
}

type shutdownFunc func(context.Context) error

func (f shutdownFunc) Shutdown(ctx context.Context) error { return f(ctx) }

func TestShutdownWarns(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	shutdown(context.Background(), shutdownFunc(func(context.Context) error { return nil }), zap.New(core))
	if logs.Len() != 0 {
		t.Errorf("clean shutdown logged %d lines", logs.Len())
	}

	errReader := errors.New("reader already shut down")
	shutdown(context.Background(), shutdownFunc(func(context.Context) error { return errReader }), zap.New(core))
	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warns) != 1 {
		t.Fatalf("%d warnings after failed shutdown, want 1", len(warns))
	}
	if got := warns[0].ContextMap()["error"]; got != errReader.Error() {
		t.Errorf("logged error = %v, want %q", got, errReader)
	}
}

type syncFunc func() error

func (f syncFunc) Sync() error { return f() }

func TestSyncLog(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.EINVAL}, ""},
		{&os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.ENOTTY}, ""},
		{errors.New("disk full"), "ladder: flushing log: disk full"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		syncLog(syncFunc(func() error { return tt.err }), &buf)
		if got := strings.TrimSpace(buf.String()); got != tt.want {
			t.Errorf("syncLog(%v) wrote %q, want %q", tt.err, got, tt.want)
		}
	}
}
