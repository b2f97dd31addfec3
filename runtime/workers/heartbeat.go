package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"tune-lab/observability"
)

// HeartbeatWorker periodically logs the health of this rank: process-level
// metrics (CPU, RSS, OS status) alongside the collective traffic counters.
// There is no central collector; the launcher aggregates by reading the
// interleaved rank logs.
type HeartbeatWorker struct {
	log      *slog.Logger
	rank     int
	interval time.Duration
	stats    *observability.CollectiveStats
}

func NewHeartbeatWorker(
	log *slog.Logger,
	rank int,
	interval time.Duration,
	stats *observability.CollectiveStats,
) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:      log,
		rank:     rank,
		interval: interval,
		stats:    stats,
	}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "rank", w.rank)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}

			snapshot := w.stats.Snapshot()
			w.log.Info("Heartbeat",
				"rank", w.rank,
				"pid", os.Getpid(),
				"pid_status", status,
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"broadcasts", snapshot.Broadcasts,
				"barriers", snapshot.Barriers,
				"bytes_out", snapshot.BytesOut,
				"bytes_in", snapshot.BytesIn,
			)
		}
	}
}

// getSelfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
