// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"errors"
	"fmt"
)

// ErrNilProvider is returned by NewGauge for a nil value provider.
var ErrNilProvider = errors.New("measure: gauge value provider is nil")

// GaugeOptions configure a Gauge.
// A zero GaugeOptions consists entirely of default values.
type GaugeOptions struct {
	// Level of the written events. Defaults to LevelInformation.
	Level Level

	// Template overrides GaugeTemplate. It must have three holes,
	// bound to name, unit and value in that order.
	Template string
}

// A Gauge reads a value on demand and writes it. It stores nothing:
// every Write calls the provider afresh.
type Gauge[T any] struct {
	sink     Sink
	name     string
	unit     string
	level    Level
	template string
	provider func() (T, error)
}

// NewGauge returns a gauge named name, measured in unit, whose value is
// read from provider.
func NewGauge[T any](m *Meter, name, unit string, provider func() (T, error), opts *GaugeOptions) (*Gauge[T], error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if opts == nil {
		opts = &GaugeOptions{}
	}
	tmpl, err := measurementTemplate(opts.Template, GaugeTemplate)
	if err != nil {
		return nil, err
	}
	return &Gauge[T]{
		sink:     m.sink,
		name:     name,
		unit:     unit,
		level:    or(opts.Level, LevelInformation),
		template: tmpl,
		provider: provider,
	}, nil
}

// Infallible adapts a provider that cannot fail.
func Infallible[T any](f func() T) func() (T, error) {
	return func() (T, error) { return f(), nil }
}

// Write reads the current value and writes it. An error from the provider
// is returned, wrapped, and nothing is written.
func (g *Gauge[T]) Write() error {
	v, err := g.provider()
	if err != nil {
		return fmt.Errorf("measure: reading gauge %q: %w", g.name, err)
	}
	if err := g.sink.Write(g.level, g.template, g.name, g.unit, v); err != nil {
		return fmt.Errorf("measure: writing gauge %q: %w", g.name, err)
	}
	return nil
}
