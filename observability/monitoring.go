package observability

import (
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"
)

// Snapshot aggregates the per-rank collective metrics for heartbeats and
// the debug inspector.
type Snapshot struct {
	Broadcasts uint64 `json:"broadcasts"`
	Barriers   uint64 `json:"barriers"`
	BytesOut   uint64 `json:"bytes_out"`
	BytesIn    uint64 `json:"bytes_in"`
	AllocMemMb uint64 `json:"alloc_mem_mb"`
	NumGC      uint32 `json:"num_gc"`
	TakenAt    string `json:"taken_at"`
}

// CollectiveStats counts collective traffic of one participant.
type CollectiveStats struct {
	log *slog.Logger

	broadcasts uint64
	barriers   uint64
	bytesOut   uint64
	bytesIn    uint64
}

func NewCollectiveStats(log *slog.Logger) *CollectiveStats {
	return &CollectiveStats{log: log}
}

func (s *CollectiveStats) IncrBroadcast() {
	atomic.AddUint64(&s.broadcasts, 1)
}

func (s *CollectiveStats) IncrBarrier() {
	atomic.AddUint64(&s.barriers, 1)
}

// AddBytesOut accounts payload bytes fanned out by the leader.
func (s *CollectiveStats) AddBytesOut(n uint64) {
	atomic.AddUint64(&s.bytesOut, n)
}

// AddBytesIn accounts payload bytes received from the leader.
func (s *CollectiveStats) AddBytesIn(n uint64) {
	atomic.AddUint64(&s.bytesIn, n)
}

func (s *CollectiveStats) Snapshot() Snapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	snap := Snapshot{
		Broadcasts: atomic.LoadUint64(&s.broadcasts),
		Barriers:   atomic.LoadUint64(&s.barriers),
		BytesOut:   atomic.LoadUint64(&s.bytesOut),
		BytesIn:    atomic.LoadUint64(&s.bytesIn),
		AllocMemMb: m.Alloc / 1024 / 1024,
		NumGC:      m.NumGC,
		TakenAt:    time.Now().Format("15:04:05"),
	}
	s.log.Debug("Stats snapshot",
		"broadcasts", snap.Broadcasts,
		"barriers", snap.Barriers,
		"bytes_out", snap.BytesOut,
		"bytes_in", snap.BytesIn,
		"mem_mb", snap.AllocMemMb,
	)
	return snap
}
