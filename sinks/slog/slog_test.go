// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mslog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bwedding/serilog-metrics/measure"
)

func Test(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: LevelVerbose,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	s := NewSink(h, &measure.SinkOptions{TemplateKey: "template"})
	if err := s.Write(measure.LevelInformation, measure.GaugeTemplate, "queue", "item(s)", 1); err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"level":      "INFO",
		"msg":        `Gauge "queue" ("item(s)") = 1`,
		"GaugeName":  "queue",
		"GaugeUnit":  "item(s)",
		"GaugeValue": float64(1),
		"template":   measure.GaugeTemplate,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

type failingHandler struct {
	slog.Handler
	err error
}

func (h failingHandler) Handle(context.Context, slog.Record) error { return h.err }

func TestHandlerErrorPropagates(t *testing.T) {
	handleErr := errors.New("disk full")
	h := failingHandler{slog.NewTextHandler(&bytes.Buffer{}, nil), handleErr}
	s := NewSink(h, nil)
	if err := s.Write(measure.LevelError, "x"); !errors.Is(err, handleErr) {
		t.Errorf("Write() = %v, want %v", err, handleErr)
	}
	// Below the handler's level: not handled, no error.
	if err := s.Write(measure.LevelDebug, "x"); err != nil {
		t.Errorf("Write() below level = %v, want nil", err)
	}
}

func TestConvertLevel(t *testing.T) {
	for _, test := range []struct {
		in   measure.Level
		want slog.Level
	}{
		{measure.LevelVerbose, LevelVerbose},
		{measure.LevelDebug, slog.LevelDebug},
		{measure.LevelInformation, slog.LevelInfo},
		{measure.LevelWarning + 1, slog.LevelWarn},
		{measure.LevelError, slog.LevelError},
		{measure.LevelFatal, LevelFatal},
	} {
		if got := ConvertLevel(test.in); got != test.want {
			t.Errorf("ConvertLevel(%s) = %s, want %s", test.in, got, test.want)
		}
	}
}
