// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mlogr provides a measure.Sink that writes to a logr.Logger.
package mlogr

import (
	"github.com/go-logr/logr"

	"github.com/bwedding/serilog-metrics/internal/msgtemplate"
	"github.com/bwedding/serilog-metrics/measure"
)

type sink struct {
	logger logr.Logger
	opts   measure.SinkOptions
}

// NewSink returns a Sink that writes each event to l.
//
// logr has verbosities rather than levels. Information maps to V(0), Debug
// to V(1) and Verbose to V(2). Warning is written with Info at V(0) and a
// "level" key, and Error and Fatal are written with Error and a nil error.
// logr has no way to report write failures, so Write always returns nil.
func NewSink(l logr.Logger, opts *measure.SinkOptions) measure.Sink {
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
	t := msgtemplate.Lookup(template)
	props := t.Properties(values)
	kvs := make([]any, 0, 2*len(props)+4)
	for _, p := range props {
		kvs = append(kvs, p.Name, p.Value)
	}
	if s.opts.TemplateKey != "" {
		kvs = append(kvs, s.opts.TemplateKey, template)
	}
	msg := t.Render(values)
	switch {
	case level >= measure.LevelError:
		s.logger.Error(nil, msg, append(kvs, "level", level.String())...)
	case level >= measure.LevelWarning:
		s.logger.Info(msg, append(kvs, "level", level.String())...)
	case level >= measure.LevelInformation:
		s.logger.Info(msg, kvs...)
	case level >= measure.LevelDebug:
		s.logger.V(1).Info(msg, kvs...)
	default:
		s.logger.V(2).Info(msg, kvs...)
	}
	return nil
}
