// Package observability reports process health at a fixed interval
// through the structured logger. It observes, never alters, the
// delivery path.
package observability

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// Monitor periodically samples process gauges and the number of users
// with at least one live connection.
type Monitor struct {
	log         *slog.Logger
	interval    time.Duration
	activeUsers func() int
}

func NewMonitor(log *slog.Logger, interval time.Duration, activeUsers func() int) *Monitor {
	return &Monitor{log: log, interval: interval, activeUsers: activeUsers}
}

// Run logs a snapshot every interval until the context is canceled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.report()
		}
	}
}

func (m *Monitor) report() {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	m.log.Info("health snapshot",
		"active_users", m.activeUsers(),
		"goroutines", runtime.NumGoroutine(),
		"alloc_mb", mem.Alloc/1024/1024,
		"num_gc", mem.NumGC,
	)
}
