// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"errors"

	"github.com/bwedding/serilog-metrics/internal/msgtemplate"
)

// Default message templates. Hole order matches the order of the values
// written with each template.
const (
	// BeginTemplate is written when TimedOptions.AnnounceBegin is set.
	// Values: id, description, extra...
	BeginTemplate = "Beginning operation {TimedOperationId}: {TimedOperationDescription}"

	// CompletedTemplate values: id, description, elapsed, elapsed ms, extra...
	CompletedTemplate = "Completed operation {TimedOperationId}: {TimedOperationDescription} in {TimedOperationElapsed} ({TimedOperationElapsedInMs} ms)"

	// ExceededTemplate values: id, description, threshold, elapsed,
	// elapsed ms, extra...
	ExceededTemplate = "Operation {TimedOperationId}: {TimedOperationDescription} exceeded the limit of {WarningLimit} by completing in {TimedOperationElapsed} ({TimedOperationElapsedInMs} ms)"

	// CounterTemplate values: name, unit, value.
	CounterTemplate = "Counter {CounterName} ({CounterUnit}) = {CounterValue}"

	// GaugeTemplate values: name, unit, value.
	GaugeTemplate = "Gauge {GaugeName} ({GaugeUnit}) = {GaugeValue}"
)

// ErrTemplateHoles is returned when a counter or gauge template does not
// have exactly one hole for each of name, unit and value.
var ErrTemplateHoles = errors.New("measure: template must have exactly three holes")

// measurementTemplate returns the template to use for a counter or gauge.
func measurementTemplate(override, def string) (string, error) {
	if override == "" {
		return def, nil
	}
	if len(msgtemplate.Lookup(override).Names()) != 3 {
		return "", ErrTemplateHoles
	}
	return override, nil
}

// bag returns fixed followed by extra. It never aliases extra.
func bag(extra []any, fixed ...any) []any {
	if len(extra) == 0 {
		return fixed
	}
	return append(fixed, extra...)
}
