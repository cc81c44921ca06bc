// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import "context"

// A Task is a unit of work that finishes at some point. Done returns a
// channel that is closed when the work reaches a terminal state, whether it
// succeeded, failed or was cancelled.
//
// context.Context implements Task, as does *TaskHandle.
type Task interface {
	Done() <-chan struct{}
}

// BeginOnCompletion starts timing description now and completes the
// operation when task finishes. It does not block: a goroutine waits for the
// task and writes the event from there.
//
// A Sink failure at completion is passed to TimedOptions.OnError, or to
// Options.OnError if the former is nil. The returned handle is done once the
// completion event has been written, and its Wait returns that failure.
// Callers that do not care may ignore it.
func (m *Meter) BeginOnCompletion(task Task, description string, opts *TimedOptions, values ...any) *TaskHandle {
	if task == nil {
		panic("measure: BeginOnCompletion called with nil Task")
	}
	op := m.BeginTimedOperation(description, opts, values...)
	h := &TaskHandle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		<-task.Done()
		if err := op.Complete(); err != nil {
			op.report(err)
			h.err = err
		}
	}()
	return h
}

// A TaskHandle is a Task for work running on its own goroutine. Go returns
// one for the function it runs; BeginOnCompletion returns one for writing
// the completion event. Wait reports the error of that work.
type TaskHandle struct {
	done chan struct{}
	err  error
}

// Go calls fn(ctx) on a new goroutine and returns a handle that is done when
// fn returns.
func Go(ctx context.Context, fn func(context.Context) error) *TaskHandle {
	t := &TaskHandle{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.err = fn(ctx)
	}()
	return t
}

// Done returns a channel that is closed when the work has finished.
func (t *TaskHandle) Done() <-chan struct{} { return t.done }

// Wait blocks until the work has finished and returns its error.
func (t *TaskHandle) Wait() error {
	<-t.done
	return t.err
}
