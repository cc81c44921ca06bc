// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/bwedding/serilog-metrics/measure"
	"github.com/bwedding/serilog-metrics/measure/measuretest"
)

func TestBeginOnCompletion(t *testing.T) {
	m, rec, clock := newMeter(t)
	release := make(chan struct{})
	task := measure.Go(context.Background(), func(context.Context) error {
		<-release
		return nil
	})
	m.BeginOnCompletion(task, "ExampleMethodAsync", &measure.TimedOptions{ID: "myid1"})
	clock.Advance(1500 * time.Millisecond)

	if rec.Wait(1, 50*time.Millisecond) {
		t.Fatal("event written before the task finished")
	}
	close(release)
	if !rec.Wait(1, 5*time.Second) {
		t.Fatal("no event after the task finished")
	}
	want := []measuretest.Event{{
		Level:    measure.LevelDebug,
		Template: measure.CompletedTemplate,
		Values:   []any{"myid1", "ExampleMethodAsync", 1500 * time.Millisecond, int64(1500)},
	}}
	if diff := cmp.Diff(want, rec.Events(), measuretest.CmpOptions...); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestBeginOnCompletionFailedTask(t *testing.T) {
	m, rec, _ := newMeter(t)
	taskErr := errors.New("task failed")
	task := measure.Go(context.Background(), func(context.Context) error { return taskErr })
	m.BeginOnCompletion(task, "failing", nil)
	if err := task.Wait(); !errors.Is(err, taskErr) {
		t.Errorf("Wait() = %v, want %v", err, taskErr)
	}
	if !rec.Wait(1, 5*time.Second) {
		t.Fatal("no event for a failed task")
	}
	if rec.Wait(2, 50*time.Millisecond) {
		t.Error("more than one event written")
	}
}

func TestBeginOnCompletionCancelledContext(t *testing.T) {
	m, rec, _ := newMeter(t)
	ctx, cancel := context.WithCancel(context.Background())
	m.BeginOnCompletion(ctx, "cancelled", &measure.TimedOptions{ID: "c"})
	cancel()
	cancel()
	if !rec.Wait(1, 5*time.Second) {
		t.Fatal("no event for a cancelled context")
	}
	if rec.Wait(2, 50*time.Millisecond) {
		t.Error("more than one event written")
	}
}

func TestBeginOnCompletionDoesNotBlock(t *testing.T) {
	m, _, _ := newMeter(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		m.BeginOnCompletion(ctx, "pending", nil)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("BeginOnCompletion blocked")
	}
}

func TestBeginOnCompletionReportsSinkError(t *testing.T) {
	m, rec, _ := newMeter(t)
	sinkErr := errors.New("sink down")
	rec.FailWith(sinkErr)
	reported := make(chan error, 1)
	ctx, cancel := context.WithCancel(context.Background())
	m.BeginOnCompletion(ctx, "x", &measure.TimedOptions{OnError: func(err error) { reported <- err }})
	cancel()
	select {
	case err := <-reported:
		if !errors.Is(err, sinkErr) {
			t.Errorf("reported %v, want %v", err, sinkErr)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("sink error not reported")
	}
}

func TestBeginOnCompletionNilTaskPanics(t *testing.T) {
	m, _, _ := newMeter(t)
	defer func() {
		if recover() == nil {
			t.Error("nil Task did not panic")
		}
	}()
	m.BeginOnCompletion(nil, "x", nil)
}

func TestBeginOnCompletionHandle(t *testing.T) {
	m, rec, _ := newMeter(t)
	ctx, cancel := context.WithCancel(context.Background())
	h := m.BeginOnCompletion(ctx, "handled", nil)
	select {
	case <-h.Done():
		t.Fatal("handle done before the task")
	default:
	}
	cancel()
	if err := h.Wait(); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
	if got := rec.Len(); got != 1 {
		t.Errorf("after Wait, %d events written, want 1", got)
	}

	sinkErr := errors.New("sink down")
	rec.FailWith(sinkErr)
	ctx, cancel = context.WithCancel(context.Background())
	h = m.BeginOnCompletion(ctx, "failing", &measure.TimedOptions{OnError: func(error) {}})
	cancel()
	if err := h.Wait(); !errors.Is(err, sinkErr) {
		t.Errorf("Wait() = %v, want %v", err, sinkErr)
	}
}
