// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mzap provides a measure.Sink that writes to a zap logger.
package mzap

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bwedding/serilog-metrics/internal/msgtemplate"
	"github.com/bwedding/serilog-metrics/measure"
)

type sink struct {
	core zapcore.Core
	name string
	opts measure.SinkOptions
}

// NewSink returns a Sink that writes each event to l's core, with the
// rendered message as the entry message and one field per property.
//
// Events are written through the core rather than the Logger, so a
// measure.LevelFatal event is logged at zap's FatalLevel without exiting.
func NewSink(l *zap.Logger, opts *measure.SinkOptions) measure.Sink {
	s := &sink{core: l.Core(), name: l.Name()}
	if opts != nil {
		s.opts = *opts
	}
	return s
}

func (s *sink) Write(level measure.Level, template string, values ...any) error {
	lvl := convertLevel(level)
	if !s.opts.Enabled(level) || !s.core.Enabled(lvl) {
		return nil
	}
	t := msgtemplate.Lookup(template)
	props := t.Properties(values)
	fields := make([]zapcore.Field, 0, len(props)+1)
	for _, p := range props {
		fields = append(fields, zap.Any(p.Name, p.Value))
	}
	if s.opts.TemplateKey != "" {
		fields = append(fields, zap.String(s.opts.TemplateKey, template))
	}
	return s.core.Write(zapcore.Entry{
		Level:      lvl,
		Time:       time.Now(),
		LoggerName: s.name,
		Message:    t.Render(values),
	}, fields)
}

func convertLevel(l measure.Level) zapcore.Level {
	switch {
	case l < measure.LevelDebug:
		return zapcore.DebugLevel - 1
	case l < measure.LevelInformation:
		return zapcore.DebugLevel
	case l < measure.LevelWarning:
		return zapcore.InfoLevel
	case l < measure.LevelError:
		return zapcore.WarnLevel
	case l < measure.LevelFatal:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}
