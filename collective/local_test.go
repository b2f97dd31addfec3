package collective

import (
	"bytes"
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"tune-lab/errors"
	"tune-lab/observability"
)

// runRanks drives every rank of the group concurrently, one goroutine per
// handle, the way one process per rank would in a real job.
func runRanks(t *testing.T, groups []Group, fn func(g Group) error) {
	t.Helper()
	var eg errgroup.Group
	for _, g := range groups {
		g := g
		eg.Go(func() error { return fn(g) })
	}
	require.NoError(t, eg.Wait())
}

func Test_LocalBroadcast_Agreement(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	// 0, 1 and >64KiB payloads all have to survive the exchange bit-identically.
	for _, size := range []int{0, 1, 100_000} {
		groups, err := NewLocalGroup(4)
		req.NoError(err)

		source := make([]byte, size)
		for i := range source {
			source[i] = byte(i % 251)
		}

		runRanks(t, groups, func(g Group) error {
			buf := make([]byte, size)
			if g.Rank() == 0 {
				copy(buf, source)
			}
			if err := g.Broadcast(ctx, buf, 0); err != nil {
				return err
			}
			if !bytes.Equal(buf, source) {
				t.Errorf("rank %d diverged for size %d", g.Rank(), size)
			}
			return nil
		})
	}
}

func Test_LocalBroadcast_SizeMismatch(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	groups, err := NewLocalGroup(2)
	req.NoError(err)

	var eg errgroup.Group
	eg.Go(func() error {
		return groups[0].Broadcast(ctx, make([]byte, 8), 0)
	})
	var followerErr error
	eg.Go(func() error {
		followerErr = groups[1].Broadcast(ctx, make([]byte, 4), 0)
		return nil
	})
	req.NoError(eg.Wait())
	req.ErrorIs(followerErr, errors.ErrSizeMismatch)
}

func Test_Barrier_ReleasesAllTogether(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	groups, err := NewLocalGroup(3)
	req.NoError(err)

	var arrived int32
	runRanks(t, groups, func(g Group) error {
		if g.Rank() == 2 {
			// Straggler: everyone else must still be parked in the barrier.
			time.Sleep(50 * time.Millisecond)
		}
		atomic.AddInt32(&arrived, 1)
		if err := g.Barrier(ctx); err != nil {
			return err
		}
		if n := atomic.LoadInt32(&arrived); n != 3 {
			t.Errorf("rank %d left the barrier with only %d arrivals", g.Rank(), n)
		}
		return nil
	})
}

func Test_Barrier_IsReusable(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	groups, err := NewLocalGroup(2)
	req.NoError(err)

	runRanks(t, groups, func(g Group) error {
		for i := 0; i < 10; i++ {
			if err := g.Barrier(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

func Test_Close_UnblocksWaiters(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	groups, err := NewLocalGroup(2)
	req.NoError(err)

	errChan := make(chan error, 1)
	go func() { errChan <- groups[0].Barrier(ctx) }()

	time.Sleep(20 * time.Millisecond)
	req.NoError(groups[1].Close())

	select {
	case err := <-errChan:
		req.ErrorIs(err, errors.ErrGroupClosed)
	case <-time.After(time.Second):
		req.Fail("waiter was never released after Close")
	}
}

type recordingStager struct {
	stages   int32
	unstages int32
}

func (s *recordingStager) Stage(buf []byte) ([]byte, error) {
	atomic.AddInt32(&s.stages, 1)
	return append([]byte(nil), buf...), nil
}

func (s *recordingStager) Unstage(staged, buf []byte) error {
	atomic.AddInt32(&s.unstages, 1)
	copy(buf, staged)
	return nil
}

func Test_Staged_HopsThroughStagerOnEveryRank(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	inner, err := NewLocalGroup(2)
	req.NoError(err)

	stager := &recordingStager{}
	groups := []Group{Staged(inner[0], stager), Staged(inner[1], stager)}
	req.True(groups[0].Capabilities().DeviceResident)

	source := []byte{1, 2, 3, 4}
	runRanks(t, groups, func(g Group) error {
		buf := make([]byte, 4)
		if g.Rank() == 0 {
			copy(buf, source)
		}
		if err := g.Broadcast(ctx, buf, 0); err != nil {
			return err
		}
		if !bytes.Equal(buf, source) {
			t.Errorf("rank %d diverged through staging", g.Rank())
		}
		return nil
	})
	req.EqualValues(2, atomic.LoadInt32(&stager.stages))
	req.EqualValues(2, atomic.LoadInt32(&stager.unstages))
}

func Test_Instrumented_CountsCollectives(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	inner, err := NewLocalGroup(2)
	req.NoError(err)

	leaderStats := observability.NewCollectiveStats(slog.Default())
	followerStats := observability.NewCollectiveStats(slog.Default())
	groups := []Group{Instrumented(inner[0], leaderStats), Instrumented(inner[1], followerStats)}

	runRanks(t, groups, func(g Group) error {
		buf := make([]byte, 16)
		if err := g.Broadcast(ctx, buf, 0); err != nil {
			return err
		}
		return g.Barrier(ctx)
	})

	leader := leaderStats.Snapshot()
	follower := followerStats.Snapshot()
	req.EqualValues(1, leader.Broadcasts)
	req.EqualValues(1, leader.Barriers)
	req.EqualValues(16, leader.BytesOut)
	req.EqualValues(16, follower.BytesIn)
}
