// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidResolution is returned for a counter resolution below one.
var ErrInvalidResolution = errors.New("measure: counter resolution must be positive")

// CounterOptions configure a Counter.
// A zero CounterOptions consists entirely of default values.
type CounterOptions struct {
	// Disabled counters keep counting but never write events.
	Disabled bool

	// Level of the written events. Defaults to LevelInformation.
	Level Level

	// An event is written on every Resolution-th mutating call.
	// Nil means 1. Zero and negative values are rejected.
	Resolution *int

	// Template overrides CounterTemplate. It must have three holes,
	// bound to name, unit and value in that order.
	Template string
}

// Every returns a resolution of n, for CounterOptions.Resolution.
func Every(n int) *int { return &n }

// A Counter accumulates a signed value and writes it on every Nth change,
// where N is the counter's resolution. The count of calls that decides when
// to write is separate from the value, and writing never resets either.
//
// A Counter is safe for concurrent use. The value and the call count are
// updated together, so each written value is the total as of the call that
// wrote it.
type Counter struct {
	sink       Sink
	name       string
	unit       string
	level      Level
	resolution int64
	enabled    bool
	template   string

	mu    sync.Mutex
	value int64
	calls int64
}

// NewCounter returns a counter named name, counting in unit.
func (m *Meter) NewCounter(name, unit string, opts *CounterOptions) (*Counter, error) {
	if opts == nil {
		opts = &CounterOptions{}
	}
	res := 1
	if opts.Resolution != nil {
		res = *opts.Resolution
	}
	if res < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidResolution, res)
	}
	tmpl, err := measurementTemplate(opts.Template, CounterTemplate)
	if err != nil {
		return nil, err
	}
	return &Counter{
		sink:       m.sink,
		name:       name,
		unit:       unit,
		level:      or(opts.Level, LevelInformation),
		resolution: int64(res),
		enabled:    !opts.Disabled,
		template:   tmpl,
	}, nil
}

// Increment adds one.
func (c *Counter) Increment() error { return c.Add(1) }

// Decrement subtracts one.
func (c *Counter) Decrement() error { return c.Add(-1) }

// Add adds delta, which may be negative.
func (c *Counter) Add(delta int64) error {
	c.mu.Lock()
	c.value += delta
	c.calls++
	emit := c.enabled && c.calls%c.resolution == 0
	v := c.value
	c.mu.Unlock()
	if !emit {
		return nil
	}
	return c.write(v)
}

// Value returns the current value.
func (c *Counter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Reset sets the value and the call count to zero without writing.
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = 0
	c.calls = 0
}

// Write writes the current value now, regardless of resolution.
// It does nothing for a disabled counter.
func (c *Counter) Write() error {
	if !c.enabled {
		return nil
	}
	return c.write(c.Value())
}

func (c *Counter) write(v int64) error {
	if err := c.sink.Write(c.level, c.template, c.name, c.unit, v); err != nil {
		return fmt.Errorf("measure: writing counter %q: %w", c.name, err)
	}
	return nil
}
