// Package runtime hosts the process-level plumbing of a job: spawning one
// worker per rank and supervising the long-lived goroutines inside each of
// them.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"tune-lab/errors"
	"tune-lab/internal"
)

const joinProbeInterval = 500 * time.Millisecond

// RankProcess tracks one spawned worker.
type RankProcess struct {
	Rank      int
	Cmd       *exec.Cmd
	StartedAt time.Time
}

// Launcher spawns the full group from a single machine: rank 0 first, then
// the followers once the leader accepts joins. Each child inherits the shared
// configuration through its environment, with RANK overridden per process.
type Launcher struct {
	mu    sync.Mutex
	log   *slog.Logger
	procs []*RankProcess
}

func NewLauncher(log *slog.Logger) *Launcher {
	return &Launcher{log: log}
}

// Init starts every rank of the group and blocks until the leader listens.
// If any process fails to start, the already-running ones are killed so no
// zombie keeps the leader port.
func (l *Launcher) Init(ctx context.Context, binPath string, config internal.Config) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := os.Stat(binPath); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrWorkerBinNotFound, binPath)
	}

	for rank := 0; rank < config.GroupSize; rank++ {
		proc, err := startRank(ctx, binPath, rank, config)
		if err != nil {
			l.killAllLocked()
			return fmt.Errorf("failed to launch rank %d: %w", rank, err)
		}
		l.procs = append(l.procs, proc)
		l.log.Info("Rank launched", "rank", rank, "pid", proc.Cmd.Process.Pid)

		if rank == 0 {
			if err := awaitLeader(ctx, config.LeaderAddr, config.JoinTimeout); err != nil {
				l.killAllLocked()
				return err
			}
		}
	}
	return nil
}

// Wait blocks until every rank exits and returns the first failure.
func (l *Launcher) Wait() error {
	l.mu.Lock()
	procs := append([]*RankProcess(nil), l.procs...)
	l.mu.Unlock()

	var eg errgroup.Group
	for _, proc := range procs {
		proc := proc
		eg.Go(func() error {
			if err := proc.Cmd.Wait(); err != nil {
				return fmt.Errorf("rank %d exited: %w", proc.Rank, err)
			}
			l.log.Info("Rank finished", "rank", proc.Rank,
				"uptime", time.Since(proc.StartedAt).Round(time.Millisecond))
			return nil
		})
	}
	return eg.Wait()
}

func (l *Launcher) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.killAllLocked()
}

func (l *Launcher) killAllLocked() {
	for _, proc := range l.procs {
		if proc.Cmd.Process != nil {
			_ = proc.Cmd.Process.Kill()
		}
	}
}

// startRank executes the worker binary as a child tied to ctx. The child
// reads its role from RANK; everything else rides the parent environment.
func startRank(ctx context.Context, binPath string, rank int, config internal.Config) (*RankProcess, error) {
	cmd := exec.CommandContext(ctx, binPath)
	cmd.Env = append(os.Environ(),
		"RANK="+strconv.Itoa(rank),
		"GROUP_SIZE="+strconv.Itoa(config.GroupSize),
		"LEADER_ADDR="+config.LeaderAddr,
		"TRANSPORT="+config.Transport,
		"DEBUG_PORT="+strconv.Itoa(config.DebugPort+rank),
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	setPlatformSpecificAttrs(cmd)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrWorkerStartFailed, err)
	}
	return &RankProcess{Rank: rank, Cmd: cmd, StartedAt: time.Now()}, nil
}

// awaitLeader probes the leader port until it accepts, so followers are only
// spawned against a listening leader.
func awaitLeader(ctx context.Context, addr string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		conn, err := net.DialTimeout("tcp", addr, joinProbeInterval)
		if err == nil {
			_ = conn.Close()
			return nil
		}
		time.Sleep(joinProbeInterval)
	}
	return fmt.Errorf("%w at %s after %s", errors.ErrLeaderUnreachable, addr, timeout)
}
