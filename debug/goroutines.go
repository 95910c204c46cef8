package debug

// Runtime metrics logger, started only when config.Debug is true. Emits the
// goroutine count, stack and heap usage, plus any attributes from probes
// (for example the compositor's layer cache counters), at a fixed interval.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// Probe returns extra attributes to include in each sample. Probes run on the
// logger goroutine and must be safe for that.
type Probe func() []slog.Attr

// StartGoroutineLogger launches a ticker that logs runtime stats until ctx is done.
func StartGoroutineLogger(ctx context.Context, interval time.Duration, logger *slog.Logger, probes ...Probe) {
	if logger == nil {
		return
	}
	if interval <= 0 {
		interval = time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				logger.LogAttrs(ctx, slog.LevelInfo, "runtime-stats", Sample(probes...)...)
			}
		}
	}()
}

// Sample collects one set of runtime attributes.
func Sample(probes ...Probe) []slog.Attr {
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var goroutines uint64
	if samples[0].Value.Kind() == metrics.KindUint64 {
		goroutines = samples[0].Value.Uint64()
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	attrs := []slog.Attr{
		slog.Uint64("goroutines", goroutines),
		slog.Uint64("stack_inuse", ms.StackInuse),
		slog.Uint64("stack_sys", ms.StackSys),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
	}
	for _, p := range probes {
		if p != nil {
			attrs = append(attrs, p()...)
		}
	}
	return attrs
}
