package collective

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"tune-lab/errors"
)

const (
	// LeaderRank is the permanent broadcast source; there is no election.
	LeaderRank = 0

	dialRetryInterval = 500 * time.Millisecond
)

// tcpGroup is a leader-hub group: rank 0 listens, every follower keeps one
// long-lived connection to it. Collectives run in lockstep over those
// connections; a shared sequence number catches any drift.
type tcpGroup struct {
	rank int
	size int
	log  *slog.Logger

	mu     sync.Mutex
	seq    uint64
	closed bool

	followers map[int]net.Conn // leader side, keyed by rank
	conn      net.Conn         // follower side
}

// NewTCPLeader listens on addr and blocks until all size-1 followers have
// joined with distinct ranks. The listener is closed afterwards: membership
// is fixed for the lifetime of the group.
func NewTCPLeader(ctx context.Context, addr string, size int, log *slog.Logger) (Group, error) {
	if size <= 0 {
		return nil, errors.ErrSizeMismatch
	}
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("leader listen on %s: %w", addr, err)
	}
	defer listener.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if tcpListener, ok := listener.(*net.TCPListener); ok {
			_ = tcpListener.SetDeadline(deadline)
		}
	}

	g := &tcpGroup{rank: LeaderRank, size: size, log: log, followers: make(map[int]net.Conn, size-1)}
	for len(g.followers) < size-1 {
		conn, err := listener.Accept()
		if err != nil {
			g.closeConns()
			return nil, fmt.Errorf("waiting for followers (%d/%d joined): %w", len(g.followers), size-1, err)
		}
		join, err := readFrame(conn)
		if err != nil || join.Op != opJoin {
			_ = conn.Close()
			continue
		}
		rank := int(join.Rank)
		if rank <= LeaderRank || rank >= size {
			log.Warn("Rejecting join with out-of-range rank", "rank", rank)
			_ = conn.Close()
			continue
		}
		if _, taken := g.followers[rank]; taken {
			log.Warn("Rejecting duplicate rank", "rank", rank)
			_ = conn.Close()
			continue
		}
		g.followers[rank] = conn
		log.Info("Follower joined", "rank", rank, "joined", len(g.followers), "expected", size-1)
	}
	return g, nil
}

// NewTCPFollower dials the leader with retries (container and process
// startup latency is the norm, not the exception) and announces its rank.
func NewTCPFollower(ctx context.Context, addr string, rank, size int, log *slog.Logger) (Group, error) {
	if size <= 0 || rank <= LeaderRank || rank >= size {
		return nil, errors.ErrRankMismatch
	}
	var dialer net.Dialer
	var conn net.Conn
	for {
		var err error
		conn, err = dialer.DialContext(ctx, "tcp", addr)
		if err == nil {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("leader not reachable at %s: %w", addr, ctx.Err())
		case <-time.After(dialRetryInterval):
		}
	}
	if err := writeFrame(conn, frame{Op: opJoin, Rank: int32(rank)}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("joining group: %w", err)
	}
	log.Info("Joined group", "rank", rank, "leader", addr)
	return &tcpGroup{rank: rank, size: size, log: log, conn: conn}, nil
}

func (g *tcpGroup) Rank() int                  { return g.rank }
func (g *tcpGroup) Size() int                  { return g.size }
func (g *tcpGroup) Capabilities() Capabilities { return Capabilities{} }

// Broadcast fans the leader's bytes out to every follower and waits for all
// acks, so every rank leaves the call together. Only rank 0 may be source.
func (g *tcpGroup) Broadcast(ctx context.Context, buf []byte, src int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if src != LeaderRank {
		return errors.ErrRankMismatch
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return errors.ErrGroupClosed
	}
	g.seq++

	if g.rank == LeaderRank {
		for rank := 1; rank < g.size; rank++ {
			if err := writeFrame(g.followers[rank], frame{Op: opBroadcast, Seq: g.seq, Payload: buf}); err != nil {
				return fmt.Errorf("broadcast to rank %d: %w", rank, err)
			}
		}
		for rank := 1; rank < g.size; rank++ {
			ack, err := readFrame(g.followers[rank])
			if err != nil {
				return fmt.Errorf("ack from rank %d: %w", rank, err)
			}
			if err := ack.expect(opAck, g.seq); err != nil {
				return err
			}
		}
		return nil
	}

	f, err := readFrame(g.conn)
	if err != nil {
		return err
	}
	if err := f.expect(opBroadcast, g.seq); err != nil {
		return err
	}
	sizeErr := error(nil)
	if len(f.Payload) != len(buf) {
		sizeErr = errors.ErrSizeMismatch
	} else {
		copy(buf, f.Payload)
	}
	// Ack even on mismatch so the leader is not left waiting.
	if err := writeFrame(g.conn, frame{Op: opAck, Seq: g.seq, Rank: int32(g.rank)}); err != nil {
		return err
	}
	return sizeErr
}

// Barrier: followers announce arrival, the leader releases everyone once
// the last arrival is in.
func (g *tcpGroup) Barrier(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return errors.ErrGroupClosed
	}
	g.seq++

	if g.rank == LeaderRank {
		for rank := 1; rank < g.size; rank++ {
			arrive, err := readFrame(g.followers[rank])
			if err != nil {
				return fmt.Errorf("arrival of rank %d: %w", rank, err)
			}
			if err := arrive.expect(opArrive, g.seq); err != nil {
				return err
			}
		}
		for rank := 1; rank < g.size; rank++ {
			if err := writeFrame(g.followers[rank], frame{Op: opRelease, Seq: g.seq}); err != nil {
				return fmt.Errorf("release of rank %d: %w", rank, err)
			}
		}
		return nil
	}

	if err := writeFrame(g.conn, frame{Op: opArrive, Seq: g.seq, Rank: int32(g.rank)}); err != nil {
		return err
	}
	release, err := readFrame(g.conn)
	if err != nil {
		return err
	}
	return release.expect(opRelease, g.seq)
}

func (g *tcpGroup) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}
	g.closed = true
	g.closeConns()
	return nil
}

func (g *tcpGroup) closeConns() {
	for _, conn := range g.followers {
		_ = conn.Close()
	}
	if g.conn != nil {
		_ = g.conn.Close()
	}
}
