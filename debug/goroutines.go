package debug

// Goroutine metrics logger, started only when config.Debug is true. The
// picker runs three long-lived goroutines (Tk event loop, cursor watcher,
// these tickers); anything growing beyond that indicates a leak in the
// capture path.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// StartGoroutineLogger launches a ticker that logs goroutine count and stack
// memory at the given interval.
func StartGoroutineLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = time.Second
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for range t.C {
			metrics.Read(samples)
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			logger.Info("goroutines",
				slog.Uint64("count", samples[0].Value.Uint64()),
				slog.Uint64("stack_inuse", uint64(ms.StackInuse)),
				slog.Uint64("heap_alloc", uint64(ms.HeapAlloc)),
			)
		}
	}()
}
