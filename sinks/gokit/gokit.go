// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mgokit provides a measure.Sink that writes to a go-kit logger.
package mgokit

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/bwedding/serilog-metrics/internal/msgtemplate"
	"github.com/bwedding/serilog-metrics/measure"
)

type sink struct {
	logger log.Logger
	opts   measure.SinkOptions
}

// NewSink returns a Sink that writes each event to l as key/value pairs: a
// go-kit level, "msg" with the rendered message, then one pair per property.
// go-kit has no Verbose or Fatal level; they are written as debug and error.
// The error from l.Log is returned.
func NewSink(l log.Logger, opts *measure.SinkOptions) measure.Sink {
	s := &sink{logger: l}
	if opts != nil {
		s.opts = *opts
	}
	return s
}

func (s *sink) Write(lv measure.Level, template string, values ...any) error {
	if !s.opts.Enabled(lv) {
		return nil
	}
	t := msgtemplate.Lookup(template)
	props := t.Properties(values)
	kvs := make([]any, 0, 2*len(props)+4)
	kvs = append(kvs, "msg", t.Render(values))
	for _, p := range props {
		kvs = append(kvs, p.Name, p.Value)
	}
	if s.opts.TemplateKey != "" {
		kvs = append(kvs, s.opts.TemplateKey, template)
	}
	return leveled(s.logger, lv).Log(kvs...)
}

func leveled(l log.Logger, lv measure.Level) log.Logger {
	switch {
	case lv < measure.LevelInformation:
		return level.Debug(l)
	case lv < measure.LevelWarning:
		return level.Info(l)
	case lv < measure.LevelError:
		return level.Warn(l)
	default:
		return level.Error(l)
	}
}
