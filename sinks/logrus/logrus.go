// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mlogrus provides a measure.Sink that writes to logrus.
// To use the standard logger:
//
//	m := measure.New(mlogrus.NewSink(logrus.StandardLogger(), nil), nil)
package mlogrus

import (
	"github.com/sirupsen/logrus"

	"github.com/bwedding/serilog-metrics/internal/msgtemplate"
	"github.com/bwedding/serilog-metrics/measure"
)

// FieldLogger is the part of *logrus.Logger and *logrus.Entry the sink uses.
type FieldLogger interface {
	WithFields(logrus.Fields) *logrus.Entry
}

type sink struct {
	logger FieldLogger
	opts   measure.SinkOptions
}

// NewSink returns a Sink that writes each event to l with one field per
// property. Entries are written with Entry.Log, so a measure.LevelFatal event
// does not exit the program. logrus reports write failures on standard error
// rather than to the caller, so Write always returns nil.
func NewSink(l FieldLogger, opts *measure.SinkOptions) measure.Sink {
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
	fields := make(logrus.Fields, len(props)+1)
	for _, p := range props {
		fields[p.Name] = p.Value
	}
	if s.opts.TemplateKey != "" {
		fields[s.opts.TemplateKey] = template
	}
	s.logger.WithFields(fields).Log(convertLevel(level), t.Render(values))
	return nil
}

func convertLevel(l measure.Level) logrus.Level {
	switch {
	case l < measure.LevelDebug:
		return logrus.TraceLevel
	case l < measure.LevelInformation:
		return logrus.DebugLevel
	case l < measure.LevelWarning:
		return logrus.InfoLevel
	case l < measure.LevelError:
		return logrus.WarnLevel
	case l < measure.LevelFatal:
		return logrus.ErrorLevel
	default:
		return logrus.FatalLevel
	}
}
