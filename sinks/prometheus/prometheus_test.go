// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mprometheus

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwedding/serilog-metrics/measure"
	"github.com/bwedding/serilog-metrics/measure/measuretest"
)

func Test(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := &measuretest.Recorder{}
	s, err := NewSink(rec, reg, nil)
	require.NoError(t, err)

	m := measure.New(s, &measure.Options{Registry: measure.NewRegistry()})
	c, err := m.NewCounter("c", "u", &measure.CounterOptions{Resolution: measure.Every(2)})
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		require.NoError(t, c.Increment())
	}
	require.NoError(t, m.BeginTimedOperation("op", nil).Complete())

	assert.Equal(t, 4, rec.Len())
	assert.Equal(t, 2, testutil.CollectAndCount(reg, "measure_events_total"))
	impl := s.(*sink)
	assert.Equal(t, 3.0, testutil.ToFloat64(impl.events.WithLabelValues("INFORMATION", measure.CounterTemplate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(impl.events.WithLabelValues("DEBUG", measure.CompletedTemplate)))
}

func TestErrorsCounted(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := &measuretest.Recorder{}
	sinkErr := errors.New("sink down")
	rec.FailWith(sinkErr)
	s, err := NewSink(rec, reg, &Options{Namespace: "app"})
	require.NoError(t, err)

	assert.ErrorIs(t, s.Write(measure.LevelWarning, "t"), sinkErr)
	impl := s.(*sink)
	assert.Equal(t, 1.0, testutil.ToFloat64(impl.errors.WithLabelValues("WARNING", "t")))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "app_event_errors_total"))
}

func TestDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewSink(measure.Discard, reg, nil)
	require.NoError(t, err)
	_, err = NewSink(measure.Discard, reg, nil)
	assert.Error(t, err)
}

func TestFailedRegistrationLeavesNothingBehind(t *testing.T) {
	reg := prometheus.NewRegistry()
	blocker := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "measure",
		Name:      "event_errors_total",
		Help:      "Taken by someone else.",
	})
	require.NoError(t, reg.Register(blocker))

	_, err := NewSink(measure.Discard, reg, nil)
	require.Error(t, err)

	require.True(t, reg.Unregister(blocker))
	_, err = NewSink(measure.Discard, reg, nil)
	assert.NoError(t, err)
}
