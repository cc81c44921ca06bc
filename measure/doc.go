// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package measure derives operational measurements from application code and
// writes them as structured log events, so that programs which already log
// can get timings, counts and gauge readings without a metrics backend.
//
// A Meter writes to a Sink, which accepts a level, a message template and an
// ordered list of property values. Adapters for common logging libraries are
// provided under the sinks directory.
//
// # Timed operations
//
// A TimedOperation writes exactly one event when it is completed: the
// completion event, or the exceeded event if a threshold was set and the
// operation took strictly longer:
//
//	op := m.BeginTimedOperation("rebuild index", &measure.TimedOptions{
//		Threshold: time.Second,
//	})
//	defer op.Complete()
//
// Meter.Time wraps a function in an operation. Meter.BeginUnscoped and
// Meter.EndUnscoped keep the operation in a Registry keyed by description and
// ID so the two calls need not share a scope. Meter.BeginOnCompletion times
// a Task, such as a context or the handle returned by Go, from the call until
// the task is done.
//
// # Counters and gauges
//
// A Counter accumulates a value and writes it on every Nth change. A Gauge
// reads a value from a function each time it is written.
//
// The package keeps no measurements of its own beyond a counter's running
// value: there is no aggregation, persistence or transport.
package measure
