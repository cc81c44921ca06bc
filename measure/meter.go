// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import "time"

// Options configure a Meter.
// A zero Options consists entirely of default values.
type Options struct {
	// Registry holds unscoped operations started through the Meter.
	// If nil, DefaultRegistry() is used.
	Registry *Registry

	// OnError receives sink failures that have no caller to return to:
	// begin announcements and completions of operations timed with
	// BeginOnCompletion. TimedOptions.OnError takes precedence.
	// If both are nil such failures are dropped.
	OnError func(error)

	// Clock returns the current time. It must return readings that carry
	// a monotonic clock, as time.Now does. If nil, time.Now is used.
	Clock func() time.Time
}

// A Meter writes timing, counter and gauge measurements to a Sink.
// A Meter is safe for concurrent use.
type Meter struct {
	sink     Sink
	registry *Registry
	onError  func(error)
	clock    func() time.Time
}

// New returns a Meter that writes to s.
// It panics if s is nil.
func New(s Sink, opts *Options) *Meter {
	if s == nil {
		panic("measure: New called with nil Sink")
	}
	m := &Meter{sink: s, clock: time.Now}
	if opts != nil {
		m.registry = opts.Registry
		m.onError = opts.OnError
		if opts.Clock != nil {
			m.clock = opts.Clock
		}
	}
	if m.registry == nil {
		m.registry = DefaultRegistry()
	}
	return m
}

// Sink returns the Sink m writes to.
func (m *Meter) Sink() Sink { return m.sink }

// Registry returns the registry holding m's unscoped operations.
func (m *Meter) Registry() *Registry { return m.registry }
