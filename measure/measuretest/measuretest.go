// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package measuretest supports testing code that writes measurements.
// A Recorder is a measure.Sink that keeps every event it is given.
package measuretest

import (
	"sync"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/bwedding/serilog-metrics/measure"
)

// An Event is one call to Sink.Write.
type Event struct {
	Level    measure.Level
	Template string
	Values   []any
}

// A Recorder records events. The zero Recorder is ready to use.
type Recorder struct {
	mu      sync.Mutex
	events  []Event
	err     error
	changed chan struct{}
}

var _ measure.Sink = (*Recorder)(nil)

// Write records the event. If FailWith has set an error, Write returns it
// and records nothing.
func (r *Recorder) Write(level measure.Level, template string, values ...any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, Event{
		Level:    level,
		Template: template,
		Values:   append([]any(nil), values...),
	})
	if r.changed != nil {
		close(r.changed)
		r.changed = nil
	}
	return nil
}

// FailWith makes subsequent writes fail with err. A nil err restores
// normal recording.
func (r *Recorder) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Reset discards the recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Wait blocks until at least n events have been recorded or timeout
// elapses, and reports whether n were reached.
func (r *Recorder) Wait(n int, timeout time.Duration) bool {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for {
		r.mu.Lock()
		if len(r.events) >= n {
			r.mu.Unlock()
			return true
		}
		if r.changed == nil {
			r.changed = make(chan struct{})
		}
		ch := r.changed
		r.mu.Unlock()
		select {
		case <-ch:
		case <-deadline.C:
			return false
		}
	}
}

// CmpOptions are the options for comparing recorded Events with go-cmp.
var CmpOptions = []cmp.Option{
	cmpopts.EquateEmpty(),
}

// A Clock is a manual clock for Options.Clock. It starts at a fixed instant
// and moves only when advanced, which makes elapsed times exact.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a Clock set to 2020-03-05T14:27:48Z.
func NewClock() *Clock {
	return &Clock{now: time.Date(2020, 3, 5, 14, 27, 48, 0, time.UTC)}
}

// Now returns the clock's current time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
