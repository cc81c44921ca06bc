// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mprometheus provides a measure.Sink that counts the events passing
// through it in Prometheus before handing them to another Sink.
//
// It is a way to see how many measurement events a process writes, by level
// and template, on an existing Prometheus endpoint. The measurements
// themselves stay in the log.
package mprometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bwedding/serilog-metrics/measure"
)

// Options configure the sink.
type Options struct {
	// Namespace prefixes the metric names. Defaults to "measure".
	Namespace string

	// ConstLabels are added to every metric.
	ConstLabels prometheus.Labels
}

type sink struct {
	next   measure.Sink
	events *prometheus.CounterVec
	errors *prometheus.CounterVec
}

// NewSink returns a Sink that writes to next and counts each write in
// <namespace>_events_total{level, template}, and each failed write in
// <namespace>_event_errors_total{level, template}. The counters are
// registered with reg. If either registration fails, neither counter is
// left registered.
func NewSink(next measure.Sink, reg prometheus.Registerer, opts *Options) (measure.Sink, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Namespace == "" {
		o.Namespace = "measure"
	}
	s := &sink{
		next: next,
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.Namespace,
			Name:        "events_total",
			Help:        "Measurement events written, by level and template.",
			ConstLabels: o.ConstLabels,
		}, []string{"level", "template"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.Namespace,
			Name:        "event_errors_total",
			Help:        "Measurement events the next sink failed to write, by level and template.",
			ConstLabels: o.ConstLabels,
		}, []string{"level", "template"}),
	}
	var registered []prometheus.Collector
	for _, c := range []prometheus.Collector{s.events, s.errors} {
		if err := reg.Register(c); err != nil {
			for _, r := range registered {
				reg.Unregister(r)
			}
			return nil, err
		}
		registered = append(registered, c)
	}
	return s, nil
}

func (s *sink) Write(level measure.Level, template string, values ...any) error {
	lv := level.String()
	s.events.WithLabelValues(lv, template).Inc()
	err := s.next.Write(level, template, values...)
	if err != nil {
		s.errors.WithLabelValues(lv, template).Inc()
	}
	return err
}
