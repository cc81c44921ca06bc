// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// TimedOptions configure a timed operation.
// A zero TimedOptions consists entirely of default values.
type TimedOptions struct {
	// ID identifies the operation in its events.
	// If empty, a random UUID is used.
	ID string

	// Level of the completion event. Defaults to LevelDebug.
	Level Level

	// If Threshold is positive and the operation takes strictly longer,
	// the exceeded event is written at ExceedLevel instead of the
	// completion event.
	Threshold time.Duration

	// ExceedLevel defaults to LevelWarning.
	ExceedLevel Level

	// CompletedTemplate and ExceededTemplate override the default
	// templates. Values are written in the same order either way.
	CompletedTemplate string
	ExceededTemplate  string

	// AnnounceBegin writes BeginTemplate at Level when the operation starts.
	AnnounceBegin bool

	// OnError overrides Options.OnError for this operation.
	OnError func(error)
}

// A TimedOperation measures the wall-clock time between its start and its
// first call to Complete, and writes exactly one event when completed.
//
// The usual pattern is
//
//	op := m.BeginTimedOperation("load config", nil)
//	defer op.Complete()
type TimedOperation struct {
	sink              Sink
	clock             func() time.Time
	onError           func(error)
	id                string
	description       string
	level             Level
	threshold         time.Duration
	exceedLevel       Level
	completedTemplate string
	exceededTemplate  string
	announce          bool
	values            []any
	start             time.Time
	done              atomic.Bool
}

// BeginTimedOperation starts timing description.
// values are appended, in order, to the values of the event written on
// completion.
func (m *Meter) BeginTimedOperation(description string, opts *TimedOptions, values ...any) *TimedOperation {
	var id string
	if opts != nil {
		id = opts.ID
	}
	if id == "" {
		id = uuid.NewString()
	}
	op := m.newOperation(description, id, opts, values)
	op.begin()
	return op
}

// newOperation builds an operation without starting its clock.
func (m *Meter) newOperation(description, id string, opts *TimedOptions, values []any) *TimedOperation {
	if opts == nil {
		opts = &TimedOptions{}
	}
	op := &TimedOperation{
		sink:              m.sink,
		clock:             m.clock,
		onError:           m.onError,
		id:                id,
		description:       description,
		level:             or(opts.Level, LevelDebug),
		threshold:         opts.Threshold,
		exceedLevel:       or(opts.ExceedLevel, LevelWarning),
		completedTemplate: opts.CompletedTemplate,
		exceededTemplate:  opts.ExceededTemplate,
		values:            append([]any(nil), values...),
	}
	if opts.OnError != nil {
		op.onError = opts.OnError
	}
	if op.completedTemplate == "" {
		op.completedTemplate = CompletedTemplate
	}
	if op.exceededTemplate == "" {
		op.exceededTemplate = ExceededTemplate
	}
	op.announce = opts.AnnounceBegin
	return op
}

// begin writes the begin event, if requested, and starts the clock.
func (op *TimedOperation) begin() {
	if op.announce {
		if err := op.sink.Write(op.level, BeginTemplate, bag(op.values, op.id, op.description)...); err != nil {
			op.report(fmt.Errorf("measure: beginning operation %q: %w", op.id, err))
		}
	}
	op.start = op.clock()
}

// ID returns the operation's identifier.
func (op *TimedOperation) ID() string { return op.id }

// Description returns the operation's description.
func (op *TimedOperation) Description() string { return op.description }

// Completed reports whether Complete has been called.
func (op *TimedOperation) Completed() bool { return op.done.Load() }

// Elapsed returns the time since the operation started.
func (op *TimedOperation) Elapsed() time.Duration {
	d := op.clock().Sub(op.start)
	if d < 0 {
		return 0
	}
	return d
}

// Complete stops the clock and writes the completion event, or the exceeded
// event if a threshold was set and the elapsed time is strictly greater.
// Only the first call has any effect; later calls return nil.
// A Sink failure is returned, wrapped.
func (op *TimedOperation) Complete() error {
	if op == nil || !op.done.CompareAndSwap(false, true) {
		return nil
	}
	elapsed := op.Elapsed()
	ms := elapsed.Milliseconds()
	var err error
	if op.threshold > 0 && elapsed > op.threshold {
		err = op.sink.Write(op.exceedLevel, op.exceededTemplate, bag(op.values, op.id, op.description, op.threshold, elapsed, ms)...)
	} else {
		err = op.sink.Write(op.level, op.completedTemplate, bag(op.values, op.id, op.description, elapsed, ms)...)
	}
	if err != nil {
		return fmt.Errorf("measure: completing operation %q: %w", op.id, err)
	}
	return nil
}

func (op *TimedOperation) report(err error) {
	if op.onError != nil {
		op.onError(err)
	}
}

// Time times fn as the operation description. The operation is completed on
// every exit path of fn, including a panic, which is re-raised afterwards.
// The result joins fn's error with any completion error.
func (m *Meter) Time(description string, opts *TimedOptions, fn func() error, values ...any) (err error) {
	op := m.BeginTimedOperation(description, opts, values...)
	defer func() {
		if cerr := op.Complete(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return fn()
}
