// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap/zapcore"
)

// gokitSink writes logfmt lines through a go-kit logger.
type gokitSink struct {
	logger log.Logger
}

func newGokitSink(w io.Writer) *gokitSink {
	return &gokitSink{logger: log.NewLogfmtLogger(log.NewSyncWriter(w))}
}

func (s *gokitSink) write(ent zapcore.Entry, fields []field) error {
	keyvals := make([]interface{}, 0, 6+2*len(fields))
	keyvals = append(keyvals,
		"ts", ent.Time.UTC().Format(time.RFC3339Nano),
		"level", ent.Level.String(),
		"msg", ent.Message,
	)
	for _, f := range fields {
		keyvals = append(keyvals, f.key, f.value)
	}
	return s.logger.Log(keyvals...)
}

// logrusSink writes through a dedicated logrus.Logger. Level filtering is
// left to zap, so the logrus logger accepts everything.
type logrusSink struct {
	logger *logrus.Logger
}

func newLogrusSink(w io.Writer) *logrusSink {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	l.SetLevel(logrus.TraceLevel)
	return &logrusSink{logger: l}
}

func (s *logrusSink) write(ent zapcore.Entry, fields []field) error {
	e := logrus.NewEntry(s.logger).WithTime(ent.Time)
	if len(fields) > 0 {
		data := make(logrus.Fields, len(fields))
		for _, f := range fields {
			data[f.key] = f.value
		}
		e = e.WithFields(data)
	}
	e.Log(logrusLevel(ent.Level), ent.Message)
	return nil
}

// logrusLevel maps zap levels onto logrus. Entry.Log panics at
// logrus.PanicLevel, so zap's panic levels are written as fatal; zap itself
// panics or exits after the write.
func logrusLevel(l zapcore.Level) logrus.Level {
	switch {
	case l < zapcore.InfoLevel:
		return logrus.DebugLevel
	case l == zapcore.InfoLevel:
		return logrus.InfoLevel
	case l == zapcore.WarnLevel:
		return logrus.WarnLevel
	case l == zapcore.ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.FatalLevel
	}
}

// zerologSink writes JSON lines through a zerolog.Logger.
type zerologSink struct {
	logger zerolog.Logger
}

func newZerologSink(w io.Writer) *zerologSink {
	return &zerologSink{logger: zerolog.New(w)}
}

func (s *zerologSink) write(ent zapcore.Entry, fields []field) error {
	// WithLevel never exits or panics, whatever the level.
	e := s.logger.WithLevel(zerologLevel(ent.Level)).Time(zerolog.TimestampFieldName, ent.Time)
	for _, f := range fields {
		e = e.Interface(f.key, f.value)
	}
	e.Msg(ent.Message)
	return nil
}

func zerologLevel(l zapcore.Level) zerolog.Level {
	switch l {
	case zapcore.DebugLevel:
		return zerolog.DebugLevel
	case zapcore.InfoLevel:
		return zerolog.InfoLevel
	case zapcore.WarnLevel:
		return zerolog.WarnLevel
	case zapcore.ErrorLevel:
		return zerolog.ErrorLevel
	case zapcore.FatalLevel:
		return zerolog.FatalLevel
	default:
		if l < zapcore.DebugLevel {
			return zerolog.TraceLevel
		}
		return zerolog.PanicLevel
	}
}

// logrSink writes through a logr.Logger backed by the standard library
// logger (stdr). Debug entries go to V(1).
type logrSink struct {
	logger logr.Logger
}

func newLogrSink(w io.Writer, level zapcore.Level) *logrSink {
	if level <= zapcore.DebugLevel {
		stdr.SetVerbosity(1)
	}
	return &logrSink{logger: stdr.New(stdlog.New(w, "", stdlog.LstdFlags))}
}

func (s *logrSink) write(ent zapcore.Entry, fields []field) error {
	var err error
	kv := make([]interface{}, 0, 2*len(fields))
	for _, f := range fields {
		if f.key == "error" && ent.Level >= zapcore.ErrorLevel {
			err = errors.New(fmt.Sprint(f.value))
			continue
		}
		kv = append(kv, f.key, f.value)
	}
	switch {
	case ent.Level >= zapcore.ErrorLevel:
		s.logger.Error(err, ent.Message, kv...)
	case ent.Level == zapcore.WarnLevel:
		s.logger.Info(ent.Message, append(kv, "level", "warn")...)
	case ent.Level <= zapcore.DebugLevel:
		s.logger.V(1).Info(ent.Message, kv...)
	default:
		s.logger.Info(ent.Message, kv...)
	}
	return nil
}
