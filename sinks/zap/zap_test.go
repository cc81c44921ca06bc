// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mzap

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bwedding/serilog-metrics/measure"
)

func Test(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core).Named("n/m")
	s := NewSink(log, &measure.SinkOptions{TemplateKey: "template"})

	if err := s.Write(measure.LevelWarning, measure.ExceededTemplate, "id1", "op", time.Second, 1100*time.Millisecond, int64(1100), "extra"); err != nil {
		t.Fatal(err)
	}
	entries := logs.AllUntimed()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", e.Level)
	}
	if e.LoggerName != "n/m" {
		t.Errorf("logger name = %q", e.LoggerName)
	}
	wantMsg := `Operation "id1": "op" exceeded the limit of 1s by completing in 1.1s (1100 ms)`
	if e.Message != wantMsg {
		t.Errorf("message = %q, want %q", e.Message, wantMsg)
	}
	want := map[string]any{
		"TimedOperationId":          "id1",
		"TimedOperationDescription": "op",
		"WarningLimit":              time.Second,
		"TimedOperationElapsed":     1100 * time.Millisecond,
		"TimedOperationElapsedInMs": int64(1100),
		"Extra0":                    "extra",
		"template":                  measure.ExceededTemplate,
	}
	if diff := cmp.Diff(want, e.ContextMap()); diff != "" {
		t.Errorf("fields mismatch (-want, +got):\n%s", diff)
	}
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel - 1)
	s := NewSink(zap.New(core), nil)
	for _, l := range []measure.Level{
		measure.LevelVerbose, measure.LevelDebug, measure.LevelInformation,
		measure.LevelWarning, measure.LevelError, measure.LevelFatal,
	} {
		if err := s.Write(l, "x"); err != nil {
			t.Fatal(err)
		}
	}
	var got []zapcore.Level
	for _, e := range logs.AllUntimed() {
		got = append(got, e.Level)
	}
	want := []zapcore.Level{
		zapcore.DebugLevel - 1, zapcore.DebugLevel, zapcore.InfoLevel,
		zapcore.WarnLevel, zapcore.ErrorLevel, zapcore.FatalLevel,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("levels mismatch (-want, +got):\n%s", diff)
	}
}

func TestFiltering(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewSink(zap.New(core), &measure.SinkOptions{MinLevel: measure.LevelWarning})
	s.Write(measure.LevelDebug, "filtered by zap")
	s.Write(measure.LevelInformation, "filtered by options")
	s.Write(measure.LevelError, "kept")
	if got := logs.Len(); got != 1 {
		t.Errorf("got %d entries, want 1", got)
	}
}
