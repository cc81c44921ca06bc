// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-logr/logr/funcr"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/bwedding/serilog-metrics/measure"
	mgokit "github.com/bwedding/serilog-metrics/sinks/gokit"
	mlogr "github.com/bwedding/serilog-metrics/sinks/logr"
	mlogrus "github.com/bwedding/serilog-metrics/sinks/logrus"
	motel "github.com/bwedding/serilog-metrics/sinks/otel"
	mslog "github.com/bwedding/serilog-metrics/sinks/slog"
	mzap "github.com/bwedding/serilog-metrics/sinks/zap"
	mzerolog "github.com/bwedding/serilog-metrics/sinks/zerolog"
)

// config is the demo configuration. Zero fields take the defaults from
// defaultConfig.
type config struct {
	// Sink is one of zap, zerolog, logrus, logr, gokit, slog or otel.
	Sink string `yaml:"sink"`

	// Format is json or text. The otel sink always prints JSON.
	Format string `yaml:"format"`

	// Level is the minimum level written, e.g. "debug" or "warning".
	Level string `yaml:"level"`

	// Threshold for the operation that is expected to be slow.
	Threshold time.Duration `yaml:"threshold"`

	// Resolution of the demo counter.
	Resolution int `yaml:"resolution"`

	// Scale multiplies every sleep in the demo.
	Scale float64 `yaml:"scale"`
}

func defaultConfig() config {
	return config{
		Sink:       "zap",
		Format:     "text",
		Level:      "debug",
		Threshold:  time.Second,
		Resolution: 2,
		Scale:      1,
	}
}

// loadConfig reads the YAML file at path over the defaults.
// An empty path yields the defaults.
func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, c.validate()
}

func (c config) validate() error {
	if _, err := measure.ParseLevel(c.Level); err != nil {
		return err
	}
	switch c.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Resolution < 1 {
		return fmt.Errorf("resolution %d: %w", c.Resolution, measure.ErrInvalidResolution)
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %v", c.Threshold)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}
	return nil
}

// newSink builds the configured sink writing to w. The returned function
// flushes and releases it.
func (c config) newSink(w io.Writer) (measure.Sink, func() error, error) {
	min, err := measure.ParseLevel(c.Level)
	if err != nil {
		return nil, nil, err
	}
	opts := &measure.SinkOptions{MinLevel: min}
	json := c.Format == "json"
	nop := func() error { return nil }

	switch c.Sink {
	case "zap":
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		if json {
			enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		}
		l := zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel-1)).Named("measuredemo")
		return mzap.NewSink(l, opts), l.Sync, nil

	case "zerolog":
		var zw io.Writer = w
		if !json {
			zw = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
		}
		l := zerolog.New(zw).Level(zerolog.TraceLevel).With().Timestamp().Logger()
		return mzerolog.NewSink(l, opts), nop, nil

	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrus.TraceLevel)
		if json {
			l.SetFormatter(&logrus.JSONFormatter{})
		}
		return mlogrus.NewSink(l, opts), nop, nil

	case "logr":
		fopts := funcr.Options{Verbosity: 2}
		write := func(prefix, args string) { fmt.Fprintln(w, prefix, args) }
		if json {
			return mlogr.NewSink(funcr.NewJSON(func(obj string) { fmt.Fprintln(w, obj) }, fopts), opts), nop, nil
		}
		return mlogr.NewSink(funcr.New(write, fopts), opts), nop, nil

	case "gokit":
		sw := kitlog.NewSyncWriter(w)
		l := kitlog.NewLogfmtLogger(sw)
		if json {
			l = kitlog.NewJSONLogger(sw)
		}
		l = kitlog.With(l, "ts", kitlog.DefaultTimestampUTC)
		return mgokit.NewSink(l, opts), nop, nil

	case "slog":
		hopts := &slog.HandlerOptions{Level: mslog.LevelVerbose}
		var h slog.Handler = slog.NewTextHandler(w, hopts)
		if json {
			h = slog.NewJSONHandler(w, hopts)
		}
		return mslog.NewSink(h, opts), nop, nil

	case "otel":
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, nil, err
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		s := motel.NewSink(tp.Tracer("measuredemo"), &motel.Options{SinkOptions: *opts})
		return s, func() error { return tp.Shutdown(context.Background()) }, nil

	default:
		return nil, nil, fmt.Errorf("unknown sink %q", c.Sink)
	}
}
