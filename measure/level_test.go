// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure_test

import (
	"testing"

	"github.com/bwedding/serilog-metrics/measure"
)

func TestLevelString(t *testing.T) {
	for _, test := range []struct {
		in   measure.Level
		want string
	}{
		{0, "!BADLEVEL(0)"},
		{measure.LevelVerbose, "VERBOSE"},
		{measure.LevelVerbose - 2, "VERBOSE-2"},
		{measure.LevelDebug, "DEBUG"},
		{measure.LevelInformation + 3, "INFORMATION+3"},
		{measure.LevelWarning, "WARNING"},
		{measure.LevelError, "ERROR"},
		{measure.LevelFatal, "FATAL"},
		{measure.LevelFatal + 5, "FATAL+5"},
	} {
		if got := test.in.String(); got != test.want {
			t.Errorf("%d: got %s, want %s", int(test.in), got, test.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, test := range []struct {
		in   string
		want measure.Level
	}{
		{"debug", measure.LevelDebug},
		{"DEBUG", measure.LevelDebug},
		{"info", measure.LevelInformation},
		{"Warning", measure.LevelWarning},
		{"warn", measure.LevelWarning},
		{"trace", measure.LevelVerbose},
		{"WARNING+2", measure.LevelWarning + 2},
		{"error-1", measure.LevelError - 1},
		{"fatal", measure.LevelFatal},
	} {
		got, err := measure.ParseLevel(test.in)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", test.in, got, test.want)
		}
	}
	for _, bad := range []string{"", "loud", "debug+x"} {
		if _, err := measure.ParseLevel(bad); err == nil {
			t.Errorf("ParseLevel(%q) succeeded", bad)
		}
	}
}

func TestLevelTextRoundTrip(t *testing.T) {
	for _, l := range []measure.Level{measure.LevelDebug, measure.LevelWarning + 1, measure.LevelFatal} {
		text, err := l.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got measure.Level
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != l {
			t.Errorf("round trip of %s gave %s", l, got)
		}
	}
}

func TestSinkOptionsEnabled(t *testing.T) {
	var nilOpts *measure.SinkOptions
	if !nilOpts.Enabled(measure.LevelVerbose) {
		t.Error("nil options filtered an event")
	}
	opts := &measure.SinkOptions{MinLevel: measure.LevelWarning}
	if opts.Enabled(measure.LevelInformation) {
		t.Error("Information passed a Warning minimum")
	}
	if !opts.Enabled(measure.LevelWarning) || !opts.Enabled(measure.LevelError) {
		t.Error("Warning minimum filtered Warning or Error")
	}
}
