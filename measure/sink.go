// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import "errors"

// A Sink writes leveled, structured events.
//
// template is a message template such as CompletedTemplate; values are the
// property values bound, in order, to the template's holes, followed by any
// extra values the caller attached. Sinks are called synchronously from the
// measuring goroutine and should return quickly. Any error is returned to the
// caller of the measuring operation unchanged in meaning; the package never
// retries.
//
// Adapters for common logging libraries live under the sinks directory.
type Sink interface {
	Write(level Level, template string, values ...any) error
}

// SinkFunc adapts an ordinary function to a Sink.
type SinkFunc func(level Level, template string, values ...any) error

// Write calls f.
func (f SinkFunc) Write(level Level, template string, values ...any) error {
	return f(level, template, values...)
}

// Discard is a Sink that drops every event.
var Discard Sink = discard{}

type discard struct{}

func (discard) Write(Level, string, ...any) error { return nil }

// Tee returns a Sink that writes each event to every sink in turn.
// All sinks are written even if some fail; the failures are joined.
func Tee(sinks ...Sink) Sink {
	return tee(append([]Sink(nil), sinks...))
}

type tee []Sink

func (t tee) Write(level Level, template string, values ...any) error {
	var errs []error
	for _, s := range t {
		if err := s.Write(level, template, values...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SinkOptions are options shared by the sink adapters.
// A zero SinkOptions consists entirely of default values.
type SinkOptions struct {
	// Ignore events whose level is below MinLevel.Level().
	// If nil, accept all levels.
	MinLevel Leveler

	// If set, the unrendered template is added to each event under this key.
	TemplateKey string
}

// Enabled reports whether an event at level l passes MinLevel.
// It is safe to call on a nil *SinkOptions.
func (o *SinkOptions) Enabled(l Level) bool {
	if o == nil || o.MinLevel == nil {
		return true
	}
	return l >= o.MinLevel.Level()
}
