package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mercator-hq/hornet/pkg/config"
	"mercator-hq/hornet/pkg/diag"
	"mercator-hq/hornet/pkg/sink"
	"mercator-hq/hornet/pkg/telemetry/metrics"
	"mercator-hq/hornet/pkg/trace"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Emit a demo trace through the configured sink",
	Long: `Build a tracer from the configuration file and run one synthetic trace
through it: a root span, two rolled-up child spans, and trace-scoped custom
context. Useful for checking what the configured sink actually emits.

Examples:
  # Emit a demo trace as JSON lines on stdout
  hornet demo

  # Emit through a specific configuration
  hornet demo --config /etc/hornet/hornet.yaml`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}

	eventSink, err := newSink(cfg.Sink, logger)
	if err != nil {
		return err
	}

	tracer := trace.New(trace.Config{
		Sink:       eventSink,
		SampleRate: cfg.SampleRate,
		Reporter:   diag.NewLogReporter(logger),
		Metrics: metrics.NewCollector(&metrics.Config{
			Enabled:   cfg.Metrics.Enabled,
			Namespace: cfg.Metrics.Namespace,
			Subsystem: cfg.Metrics.Subsystem,
		}, nil),
		Keys: cfg.Schema,
		Metadata: trace.Metadata{
			Instrumentations: cfg.Instrumentations,
		},
	})

	ctx, root := tracer.StartTrace(context.Background(), trace.Fields{
		"name":         "demo",
		"service_name": cfg.ServiceName,
	})
	if root == nil {
		fmt.Println("demo trace was sampled out; rerun or raise sample_rate")
		return nil
	}
	tracer.AddContext(ctx, trace.Fields{"demo.run_at": time.Now().Format(time.RFC3339)})

	for i := 0; i < 2; i++ {
		span := tracer.StartSpan(ctx, trace.Fields{
			"name":      fmt.Sprintf("demo.work.%d", i),
			"meta.type": "demo_work",
		})
		time.Sleep(5 * time.Millisecond)
		tracer.FinishSpan(ctx, span, trace.WithRollup("work"))
	}

	tracer.FinishTrace(ctx, root)
	return nil
}

// newLogger builds the diagnostic logger from logging configuration.
func newLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid logging level %q: %w", cfg.Level, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch cfg.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("invalid logging format %q", cfg.Format)
	}
}

// newSink builds the event sink from sink configuration.
func newSink(cfg config.SinkConfig, logger *slog.Logger) (sink.Sink, error) {
	switch cfg.Type {
	case "nop":
		return sink.Nop{}, nil
	case "writer":
		var out io.Writer = os.Stdout
		if cfg.Path != "" {
			f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, fmt.Errorf("failed to open sink path %q: %w", cfg.Path, err)
			}
			out = f
		}
		return sink.NewWriter(out, logger), nil
	default:
		return nil, fmt.Errorf("unknown sink type %q", cfg.Type)
	}
}
