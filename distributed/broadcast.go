// Package distributed keeps a group of co-scheduled worker processes in
// agreement about trial decisions that only the leader can make. Values are
// computed on rank 0 and propagated collectively; every other rank leaves
// each call holding a bit-identical copy.
package distributed

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/near/borsh-go"

	"tune-lab/collective"
	"tune-lab/errors"
)

// Scalar broadcasts carry a status byte ahead of the fixed-width value so a
// leader-side compute failure reaches every rank inside the same single
// collective instead of stranding followers in it forever. Object
// broadcasts encode the same signal in the sign of the phase-A length.
const (
	statusOK     = 0
	statusFailed = 1
)

// broadcastScalar is the shared fixed-width path: the leader fills the
// value slot (or flags failure), one collective propagates the buffer, and
// every rank decodes its own copy.
func broadcastScalar(
	ctx context.Context,
	g collective.Group,
	width int,
	fill func(buf []byte) error,
) ([]byte, error) {
	buf := make([]byte, 1+width)
	var computeErr error
	if g.Rank() == collective.LeaderRank {
		if err := fill(buf[1:]); err != nil {
			computeErr = err
			buf[0] = statusFailed
		}
	}
	if err := g.Broadcast(ctx, buf, collective.LeaderRank); err != nil {
		return nil, err
	}
	if buf[0] == statusFailed {
		if computeErr != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrLeaderCompute, computeErr)
		}
		return nil, errors.ErrLeaderCompute
	}
	return buf[1:], nil
}

func broadcastFloat(ctx context.Context, g collective.Group, compute func() (float64, error)) (float64, error) {
	out, err := broadcastScalar(ctx, g, 8, func(buf []byte) error {
		v, err := compute()
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(out)), nil
}

func broadcastInt(ctx context.Context, g collective.Group, compute func() (int64, error)) (int64, error) {
	out, err := broadcastScalar(ctx, g, 8, func(buf []byte) error {
		v, err := compute()
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint64(buf, uint64(v))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(out)), nil
}

// broadcastBool rides a single byte: the substrate has no boolean kind, so
// the verdict travels as a small unsigned integer.
func broadcastBool(ctx context.Context, g collective.Group, compute func() (bool, error)) (bool, error) {
	out, err := broadcastScalar(ctx, g, 1, func(buf []byte) error {
		v, err := compute()
		if err != nil {
			return err
		}
		if v {
			buf[0] = 1
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return out[0] != 0, nil
}

// broadcastObject propagates a value of unknown size with a two-phase
// exchange. Phase A agrees on the payload length (a scalar broadcast of an
// int64); only then can followers size their buffers for phase B, which
// carries the serialized bytes. A negative length reports a leader failure
// and its magnitude sizes the error text that rides phase B instead, so
// every rank returns the same error.
//
// The leader decodes its own buffer like everyone else: identical work on
// every rank keeps per-step cost uniform under synchronized execution.
func broadcastObject[T any](ctx context.Context, g collective.Group, compute func() (T, error)) (T, error) {
	var zero T

	var payload []byte
	var failedCompute bool
	if g.Rank() == collective.LeaderRank {
		v, err := compute()
		if err == nil {
			payload, err = borsh.Serialize(v)
		}
		if err != nil {
			// Failure payload: the error text itself.
			failedCompute = true
			payload = []byte(err.Error())
			if len(payload) == 0 {
				payload = []byte("unknown leader failure")
			}
		}
	}

	// Phase A: size agreement.
	lenBuf := make([]byte, 8)
	if g.Rank() == collective.LeaderRank {
		length := int64(len(payload))
		if failedCompute {
			length = -length
		}
		binary.LittleEndian.PutUint64(lenBuf, uint64(length))
	}
	if err := g.Broadcast(ctx, lenBuf, collective.LeaderRank); err != nil {
		return zero, err
	}
	length := int64(binary.LittleEndian.Uint64(lenBuf))
	failed := length < 0
	size := length
	if failed {
		size = -length
	}

	// Phase B: payload transfer into buffers of the agreed size.
	buf := make([]byte, size)
	if g.Rank() == collective.LeaderRank {
		copy(buf, payload)
	}
	if err := g.Broadcast(ctx, buf, collective.LeaderRank); err != nil {
		return zero, err
	}
	if failed {
		return zero, fmt.Errorf("%w: %s", errors.ErrLeaderCompute, string(buf))
	}

	var out T
	if err := borsh.Deserialize(&out, buf); err != nil {
		return zero, fmt.Errorf("decoding broadcast payload: %w", err)
	}
	return out, nil
}
