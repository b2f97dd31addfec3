package collective

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// reservePort grabs a loopback port and releases it for the leader to bind.
func reservePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

// startTCPGroup brings up a leader and size-1 followers on loopback and
// returns one handle per rank.
func startTCPGroup(t *testing.T, size int) []Group {
	t.Helper()
	addr := reservePort(t)
	log := slog.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	groups := make([]Group, size)
	var eg errgroup.Group
	eg.Go(func() error {
		g, err := NewTCPLeader(ctx, addr, size, log)
		groups[0] = g
		return err
	})
	for rank := 1; rank < size; rank++ {
		rank := rank
		eg.Go(func() error {
			g, err := NewTCPFollower(ctx, addr, rank, size, log)
			groups[rank] = g
			return err
		})
	}
	require.NoError(t, eg.Wait())
	t.Cleanup(func() {
		for _, g := range groups {
			_ = g.Close()
		}
	})
	return groups
}

func Test_TCPBroadcast_Agreement(t *testing.T) {
	ctx := context.Background()
	groups := startTCPGroup(t, 3)

	for _, size := range []int{0, 1, 100_000} {
		source := make([]byte, size)
		for i := range source {
			source[i] = byte(i % 97)
		}
		runRanks(t, groups, func(g Group) error {
			buf := make([]byte, size)
			if g.Rank() == LeaderRank {
				copy(buf, source)
			}
			if err := g.Broadcast(ctx, buf, LeaderRank); err != nil {
				return err
			}
			if !bytes.Equal(buf, source) {
				t.Errorf("rank %d diverged for size %d", g.Rank(), size)
			}
			return nil
		})
	}
}

func Test_TCPBroadcast_OnlyLeaderMaySource(t *testing.T) {
	req := require.New(t)
	groups := startTCPGroup(t, 2)

	err := groups[1].Broadcast(context.Background(), make([]byte, 1), 1)
	req.Error(err)
}

func Test_TCPBarrier_Reusable(t *testing.T) {
	ctx := context.Background()
	groups := startTCPGroup(t, 3)

	runRanks(t, groups, func(g Group) error {
		for i := 0; i < 5; i++ {
			if err := g.Barrier(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

func Test_TCPMixedSequence_StaysInLockstep(t *testing.T) {
	ctx := context.Background()
	groups := startTCPGroup(t, 2)

	// Alternate broadcasts and barriers; the shared sequence number would
	// flag any drift between the two sides.
	runRanks(t, groups, func(g Group) error {
		for i := 0; i < 4; i++ {
			buf := make([]byte, 8)
			if err := g.Broadcast(ctx, buf, LeaderRank); err != nil {
				return err
			}
			if err := g.Barrier(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

func Test_TCPFollower_RejectsBadRank(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := NewTCPFollower(ctx, "127.0.0.1:1", 0, 2, slog.Default())
	req.Error(err, "rank 0 is the leader, not a follower")
	_, err = NewTCPFollower(ctx, "127.0.0.1:1", 5, 2, slog.Default())
	req.Error(err)
}
