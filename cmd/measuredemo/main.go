// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Measuredemo exercises every kind of measurement against one of the
// logging back ends, so their output can be compared side by side.
//
// Usage:
//
//	measuredemo [-config file.yaml] [-sink name] [-level level] [-scale factor]
//
// The configuration file is YAML:
//
//	sink: zerolog     # zap, zerolog, logrus, logr, gokit, slog or otel
//	format: json      # json or text
//	level: debug      # minimum level written
//	threshold: 1s     # limit of the operation that runs over
//	resolution: 2     # resolution of the counter
//	scale: 0.1        # multiplies every sleep
//
// Flags override the file. When the demo ends it prints how many events
// were written at each level and template.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bwedding/serilog-metrics/measure"
	mprometheus "github.com/bwedding/serilog-metrics/sinks/prometheus"
)

var (
	configFile = flag.String("config", "", "read configuration from `file`")
	sinkFlag   = flag.String("sink", "", "logging back end (overrides config)")
	levelFlag  = flag.String("level", "", "minimum `level` written (overrides config)")
	scaleFlag  = flag.Float64("scale", 0, "multiply every sleep by `factor` (overrides config)")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: measuredemo [flags]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("measuredemo: ")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		usage()
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *sinkFlag != "" {
		cfg.Sink = *sinkFlag
	}
	if *levelFlag != "" {
		cfg.Level = *levelFlag
	}
	if *scaleFlag != 0 {
		cfg.Scale = *scaleFlag
	}
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	if err := run(context.Background(), cfg, os.Stdout, reg); err != nil {
		log.Fatal(err)
	}
	if err := printTotals(os.Stderr, reg); err != nil {
		log.Fatal(err)
	}
}

// run writes the demo measurements to w. Event totals are counted in reg.
func run(ctx context.Context, cfg config, w io.Writer, reg prometheus.Registerer) (err error) {
	base, closeSink, err := cfg.newSink(w)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, closeSink()) }()

	sink, err := mprometheus.NewSink(base, reg, nil)
	if err != nil {
		return err
	}
	m := measure.New(sink, &measure.Options{
		Registry: measure.NewRegistry(),
		OnError:  func(err error) { log.Print(err) },
	})
	sleep := func(d time.Duration) {
		time.Sleep(time.Duration(float64(d) * cfg.Scale))
	}

	// Time the whole demo without a scope.
	if err := m.BeginUnscoped("No scope test", "no-scope", nil); err != nil {
		return err
	}

	err = m.Time("Time a thread sleep for 2 seconds.", nil, func() error {
		sleep(time.Second)
		err := m.Time("And inside we wait for 2 seconds.", nil, func() error {
			sleep(2 * time.Second)
			return nil
		})
		sleep(time.Second)
		return err
	})
	if err != nil {
		return err
	}

	err = m.Time("Using a passed in identifier (b)", &measure.TimedOptions{ID: "test-loop"}, func() error {
		var b strings.Builder
		for i := 0; i < 1000; i++ {
			b.WriteString("b")
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := m.BeginUnscoped("No scope test", "no-scope2", nil); err != nil {
		return err
	}
	sleep(time.Second)
	if err := m.EndUnscoped("No scope test", "no-scope2"); err != nil {
		return err
	}

	limit := time.Duration(float64(cfg.Threshold) * cfg.Scale)
	over := &measure.TimedOptions{Threshold: limit}
	err = m.Time("This should execute within the threshold.", over, func() error {
		time.Sleep(limit + limit/10)
		return nil
	})
	if err != nil {
		return err
	}

	var queue []int
	gauge, err := measure.NewGauge(m, "queue", "item(s)", measure.Infallible(func() int { return len(queue) }), nil)
	if err != nil {
		return err
	}
	for _, step := range []func(){
		func() {},
		func() { queue = append(queue, 20) },
		func() { queue = queue[1:] },
	} {
		step()
		if err := gauge.Write(); err != nil {
			return err
		}
	}

	counter, err := m.NewCounter("counter", "operation(s)", &measure.CounterOptions{
		Level:      measure.LevelDebug,
		Resolution: measure.Every(cfg.Resolution),
	})
	if err != nil {
		return err
	}
	for _, delta := range []int64{1, 1, 1, -1, 10, -5} {
		if err := counter.Add(delta); err != nil {
			return err
		}
	}

	task := measure.Go(ctx, func(ctx context.Context) error {
		sleep(1500 * time.Millisecond)
		return nil
	})
	logged := m.BeginOnCompletion(task, "ExampleMethodAsync", &measure.TimedOptions{ID: "myid1"})

	if err := m.EndUnscoped("No scope test", "no-scope"); err != nil {
		return err
	}
	if err := task.Wait(); err != nil {
		return err
	}
	return logged.Wait()
}

// printTotals writes the event counts gathered in g, one line per level and
// template.
func printTotals(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, mf := range mfs {
		for _, metric := range mf.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, lp := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %v", mf.GetName(), strings.Join(labels, ","), metric.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
