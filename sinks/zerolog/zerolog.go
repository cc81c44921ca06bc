// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mzerolog provides a measure.Sink that writes to a zerolog logger.
package mzerolog

import (
	"github.com/rs/zerolog"

	"github.com/bwedding/serilog-metrics/internal/msgtemplate"
	"github.com/bwedding/serilog-metrics/measure"
)

type sink struct {
	logger zerolog.Logger
	opts   measure.SinkOptions
}

// NewSink returns a Sink that writes each event to l.
//
// Events are started with WithLevel, so a measure.LevelFatal event does not
// exit the program. zerolog reports write failures to zerolog.ErrorHandler
// rather than to the caller, so Write always returns nil.
func NewSink(l zerolog.Logger, opts *measure.SinkOptions) measure.Sink {
	s := &sink{logger: l}
	if opts != nil {
		s.opts = *opts
	}
	return s
}

func (s *sink) Write(level measure.Level, template string, values ...any) error {
	if !s.opts.Enabled(level) {
		return nil
	}
	ev := s.logger.WithLevel(convertLevel(level))
	if ev == nil {
		return nil
	}
	t := msgtemplate.Lookup(template)
	for _, p := range t.Properties(values) {
		ev = ev.Interface(p.Name, p.Value)
	}
	if s.opts.TemplateKey != "" {
		ev = ev.Str(s.opts.TemplateKey, template)
	}
	ev.Msg(t.Render(values))
	return nil
}

func convertLevel(l measure.Level) zerolog.Level {
	switch {
	case l < measure.LevelDebug:
		return zerolog.TraceLevel
	case l < measure.LevelInformation:
		return zerolog.DebugLevel
	case l < measure.LevelWarning:
		return zerolog.InfoLevel
	case l < measure.LevelError:
		return zerolog.WarnLevel
	case l < measure.LevelFatal:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}
