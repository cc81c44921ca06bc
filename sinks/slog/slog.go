// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mslog provides a measure.Sink that writes to a log/slog Handler.
package mslog

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwedding/serilog-metrics/internal/msgtemplate"
	"github.com/bwedding/serilog-metrics/measure"
)

// Levels outside slog's named range.
const (
	LevelVerbose = slog.LevelDebug - 4
	LevelFatal   = slog.LevelError + 4
)

type sink struct {
	handler slog.Handler
	opts    measure.SinkOptions
}

// NewSink returns a Sink that passes each event to h as a slog.Record, so
// that h's error is returned from Write. Verbose and Fatal events use
// LevelVerbose and LevelFatal.
func NewSink(h slog.Handler, opts *measure.SinkOptions) measure.Sink {
	s := &sink{handler: h}
	if opts != nil {
		s.opts = *opts
	}
	return s
}

func (s *sink) Write(level measure.Level, template string, values ...any) error {
	lvl := ConvertLevel(level)
	ctx := context.Background()
	if !s.opts.Enabled(level) || !s.handler.Enabled(ctx, lvl) {
		return nil
	}
	t := msgtemplate.Lookup(template)
	r := slog.NewRecord(time.Now(), lvl, t.Render(values), 0)
	for _, p := range t.Properties(values) {
		r.AddAttrs(slog.Any(p.Name, p.Value))
	}
	if s.opts.TemplateKey != "" {
		r.AddAttrs(slog.String(s.opts.TemplateKey, template))
	}
	return s.handler.Handle(ctx, r)
}

// ConvertLevel maps a measure.Level to a slog.Level.
func ConvertLevel(l measure.Level) slog.Level {
	switch {
	case l < measure.LevelDebug:
		return LevelVerbose
	case l < measure.LevelInformation:
		return slog.LevelDebug
	case l < measure.LevelWarning:
		return slog.LevelInfo
	case l < measure.LevelError:
		return slog.LevelWarn
	case l < measure.LevelFatal:
		return slog.LevelError
	default:
		return LevelFatal
	}
}
