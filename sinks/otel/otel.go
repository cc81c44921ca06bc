// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package motel provides a measure.Sink that records events as
// OpenTelemetry spans.
package motel

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bwedding/serilog-metrics/internal/msgtemplate"
	"github.com/bwedding/serilog-metrics/measure"
)

// Attribute keys added to every span.
const (
	LevelKey   = attribute.Key("measure.level")
	MessageKey = attribute.Key("measure.message")
)

// Options configure the sink.
type Options struct {
	measure.SinkOptions

	// Context is the parent of each span. If nil, spans are roots.
	Context context.Context

	// If ElapsedKey names a property holding a time.Duration, the span is
	// backdated to start that long before the event, so timed operations
	// appear with their real extent. The default is the elapsed property of
	// the timed-operation templates. Set it to "-" to disable.
	ElapsedKey string
}

type sink struct {
	tracer trace.Tracer
	opts   Options
}

// NewSink returns a Sink that records each event as a span named by its
// template, with one attribute per property. Events at measure.LevelError
// and above set the span status to Error.
func NewSink(tracer trace.Tracer, opts *Options) measure.Sink {
	s := &sink{tracer: tracer}
	if opts != nil {
		s.opts = *opts
	}
	if s.opts.Context == nil {
		s.opts.Context = context.Background()
	}
	if s.opts.ElapsedKey == "" {
		s.opts.ElapsedKey = "TimedOperationElapsed"
	}
	return s
}

func (s *sink) Write(level measure.Level, template string, values ...any) error {
	if !s.opts.Enabled(level) {
		return nil
	}
	t := msgtemplate.Lookup(template)
	msg := t.Render(values)
	props := t.Properties(values)
	attrs := make([]attribute.KeyValue, 0, len(props)+3)
	attrs = append(attrs, LevelKey.String(level.String()), MessageKey.String(msg))
	end := time.Now()
	start := end
	for _, p := range props {
		if d, ok := p.Value.(time.Duration); ok && p.Name == s.opts.ElapsedKey {
			start = end.Add(-d)
		}
		attrs = append(attrs, toAttribute(p))
	}
	if s.opts.TemplateKey != "" {
		attrs = append(attrs, attribute.String(s.opts.TemplateKey, template))
	}
	_, span := s.tracer.Start(s.opts.Context, template,
		trace.WithTimestamp(start),
		trace.WithAttributes(attrs...))
	if level >= measure.LevelError {
		span.SetStatus(codes.Error, msg)
	}
	span.End(trace.WithTimestamp(end))
	return nil
}

func toAttribute(p msgtemplate.Property) attribute.KeyValue {
	switch v := p.Value.(type) {
	case string:
		return attribute.String(p.Name, v)
	case bool:
		return attribute.Bool(p.Name, v)
	case int:
		return attribute.Int(p.Name, v)
	case int64:
		return attribute.Int64(p.Name, v)
	case float64:
		return attribute.Float64(p.Name, v)
	case time.Duration:
		return attribute.String(p.Name, v.String())
	case fmt.Stringer:
		return attribute.Stringer(p.Name, v)
	default:
		return attribute.String(p.Name, fmt.Sprint(v))
	}
}
