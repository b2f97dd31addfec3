package collective

import (
	"context"
	"sync"

	"tune-lab/errors"
)

// NewLocalGroup builds an in-process group of the given size and hands out
// one handle per rank. All handles share a rendezvous hub; each handle is
// meant to be driven by exactly one goroutine, mirroring one OS process per
// participant in the real deployment.
func NewLocalGroup(size int) ([]Group, error) {
	if size <= 0 {
		return nil, errors.ErrSizeMismatch
	}
	hub := &localHub{size: size}
	hub.cond = sync.NewCond(&hub.mu)
	groups := make([]Group, size)
	for rank := 0; rank < size; rank++ {
		groups[rank] = &localGroup{hub: hub, rank: rank}
	}
	return groups, nil
}

type localGroup struct {
	hub  *localHub
	rank int
}

func (g *localGroup) Rank() int                  { return g.rank }
func (g *localGroup) Size() int                  { return g.hub.size }
func (g *localGroup) Capabilities() Capabilities { return Capabilities{} }
func (g *localGroup) Close() error               { return g.hub.close() }

func (g *localGroup) Broadcast(ctx context.Context, buf []byte, src int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if src < 0 || src >= g.hub.size {
		return errors.ErrRankMismatch
	}
	return g.hub.broadcast(g.rank, buf, src)
}

func (g *localGroup) Barrier(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return g.hub.await()
}

// localHub is a reusable generation barrier with a one-slot payload.
// Collectives are strictly sequential per group, so one slot is enough.
type localHub struct {
	mu     sync.Mutex
	cond   *sync.Cond
	size   int
	count  int
	gen    uint64
	closed bool

	payload []byte
}

// await blocks the caller until all members arrive, then releases everyone
// together. The generation counter lets the barrier be reused immediately.
func (h *localHub) await() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.awaitLocked()
}

func (h *localHub) awaitLocked() error {
	if h.closed {
		return errors.ErrGroupClosed
	}
	gen := h.gen
	h.count++
	if h.count == h.size {
		h.count = 0
		h.gen++
		h.cond.Broadcast()
		return nil
	}
	for gen == h.gen && !h.closed {
		h.cond.Wait()
	}
	if h.closed {
		return errors.ErrGroupClosed
	}
	return nil
}

// broadcast publishes the source's bytes, rendezvouses, copies, then
// rendezvouses again so the payload slot cannot be overwritten by a later
// collective before every rank has read it.
func (h *localHub) broadcast(rank int, buf []byte, src int) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return errors.ErrGroupClosed
	}
	if rank == src {
		h.payload = append([]byte(nil), buf...)
	}
	if err := h.awaitLocked(); err != nil {
		h.mu.Unlock()
		return err
	}

	var copyErr error
	if rank != src {
		if len(h.payload) != len(buf) {
			copyErr = errors.ErrSizeMismatch
		} else {
			copy(buf, h.payload)
		}
	}

	// Second rendezvous: keeps a mismatching rank from desynchronizing the
	// group before reporting its error.
	err := h.awaitLocked()
	h.mu.Unlock()
	if copyErr != nil {
		return copyErr
	}
	return err
}

func (h *localHub) close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	h.cond.Broadcast()
	return nil
}
