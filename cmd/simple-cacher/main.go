package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	cache "github.com/prizzledev/simple-cacher"
	"github.com/prizzledev/simple-cacher/metrics"
	"github.com/prizzledev/simple-cacher/types"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := newLogger(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("demo failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, logger *slog.Logger, w io.Writer) error {
	fmt.Fprintln(w, "\n==================== SYSTEM BOOT ====================")
	fmt.Fprintln(w, "DEFAULT TTL     :", cfg.DefaultTTL)
	fmt.Fprintln(w, "CAPACITY        :", capacityLabel(cfg.Capacity))
	fmt.Fprintln(w, "EVICTION POLICY : FIFO")
	fmt.Fprintln(w, "SWEEP INTERVAL  :", sweepLabel(cfg.SweepInterval))

	reg := prometheus.NewRegistry()
	opts := []cache.Option{
		cache.WithMetrics(metrics.NewPrometheus(cfg.MetricsNamespace, reg)),
		cache.WithLogger(logger),
	}

	steps := []struct {
		title string
		fn    func() error
	}{
		{"1) TTL EXPIRATION", func() error { return demoExpiry(ctx, w, opts) }},
		{"2) FIFO EVICTION", func() error { return demoEviction(w, opts) }},
		{"3) PREFIX MATCHER", func() error { return demoPrefix(w, opts) }},
		{"4) RANGE MATCHER", func() error { return demoRange(w, opts) }},
		{"5) CLEANUP", func() error { return demoCleanup(ctx, w, opts) }},
		{"6) FILE CACHE", func() error { return demoFiles(cfg, logger, w, opts) }},
		{"7) REGEX MATCHERS", func() error { return demoRegex(w, opts) }},
		{"8) READ-THROUGH", func() error { return demoReadThrough(ctx, cfg, logger, w, opts) }},
	}
	for _, s := range steps {
		fmt.Fprintf(w, "\n==================== %s ====================\n", s.title)
		if err := s.fn(); err != nil {
			return fmt.Errorf("%s: %w", s.title, err)
		}
	}

	fmt.Fprintln(w, "\n==================== METRICS ====================")
	if err := printMetrics(w, reg); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n==================== SHUTDOWN ====================")
	return nil
}

func lookup[K comparable, V any](c *cache.Store[K, V], key K) string {
	e, err := c.Get(key)
	return show(e, err)
}

// show renders a lookup result on one line.
func show[V any](e *types.Entry[V], err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	return fmt.Sprint(e.Value())
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func capacityLabel(n int) string {
	if n < 0 {
		return "unbounded"
	}
	return fmt.Sprintf("%d keys", n)
}

func sweepLabel(d time.Duration) string {
	if d <= 0 {
		return "off"
	}
	return d.String()
}

func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			fmt.Fprintf(w, "%-45s: %.0f\n", f.GetName(), m.GetCounter().GetValue())
		}
	}
	return nil
}
