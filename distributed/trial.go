package distributed

import (
	"context"
	"log/slog"
	"time"

	"tune-lab/collective"
	"tune-lab/contract"
	"tune-lab/domain"
	"tune-lab/errors"
)

// Trial is the synchronized facade over a leader-local trial. All ranks of
// the group call the same methods at the same points of their loop; the
// leader delegates to the real trial and broadcasts the outcome, followers
// only participate in the collectives. Construction pins the invariant:
// exactly the leader holds a delegate.
type Trial struct {
	group    collective.Group
	delegate contract.Trial
	log      *slog.Logger
}

var _ contract.Trial = (*Trial)(nil)

func NewTrial(group collective.Group, delegate contract.Trial, log *slog.Logger) (*Trial, error) {
	if group.Rank() == collective.LeaderRank && delegate == nil {
		return nil, errors.ErrNoDelegate
	}
	if group.Rank() != collective.LeaderRank && delegate != nil {
		return nil, errors.ErrDelegateOnFollower
	}
	return &Trial{group: group, delegate: delegate, log: log}, nil
}

func (t *Trial) Rank() int {
	return t.group.Rank()
}

func (t *Trial) IsLeader() bool {
	return t.group.Rank() == collective.LeaderRank
}

// ready re-checks the delegate invariant so a broken leader fails locally
// instead of inside a collective, where followers would block on it.
func (t *Trial) ready() error {
	if t.group.Rank() == collective.LeaderRank && t.delegate == nil {
		return errors.ErrNoDelegate
	}
	return nil
}

func (t *Trial) float(ctx context.Context, compute func() (float64, error)) (float64, error) {
	if err := t.ready(); err != nil {
		return 0, err
	}
	return broadcastFloat(ctx, t.group, compute)
}

func (t *Trial) SuggestFloat(ctx context.Context, name string, low, high float64) (float64, error) {
	return t.float(ctx, func() (float64, error) {
		return t.delegate.SuggestFloat(ctx, name, low, high)
	})
}

func (t *Trial) SuggestFloatLog(ctx context.Context, name string, low, high float64) (float64, error) {
	return t.float(ctx, func() (float64, error) {
		return t.delegate.SuggestFloatLog(ctx, name, low, high)
	})
}

func (t *Trial) SuggestFloatStep(ctx context.Context, name string, low, high, step float64) (float64, error) {
	return t.float(ctx, func() (float64, error) {
		return t.delegate.SuggestFloatStep(ctx, name, low, high, step)
	})
}

func (t *Trial) SuggestInt(ctx context.Context, name string, low, high, step int64, log bool) (int64, error) {
	if err := t.ready(); err != nil {
		return 0, err
	}
	return broadcastInt(ctx, t.group, func() (int64, error) {
		return t.delegate.SuggestInt(ctx, name, low, high, step, log)
	})
}

func (t *Trial) SuggestCategorical(ctx context.Context, name string, choices []domain.Value) (domain.Value, error) {
	if err := t.ready(); err != nil {
		return domain.Nil(), err
	}
	return broadcastObject(ctx, t.group, func() (domain.Value, error) {
		return t.delegate.SuggestCategorical(ctx, name, choices)
	})
}

// Report mutates on the leader only, then holds everyone at a barrier so no
// rank runs ahead while the write is in flight. Followers cannot see the
// leader's write error; they rely on the leader failing its own step.
func (t *Trial) Report(ctx context.Context, value float64, step int64) error {
	return t.mutate(ctx, func() error {
		return t.delegate.Report(ctx, value, step)
	})
}

func (t *Trial) ShouldPrune(ctx context.Context) (bool, error) {
	if err := t.ready(); err != nil {
		return false, err
	}
	return broadcastBool(ctx, t.group, func() (bool, error) {
		return t.delegate.ShouldPrune(ctx)
	})
}

func (t *Trial) SetUserAttr(ctx context.Context, key string, value domain.Value) error {
	return t.mutate(ctx, func() error {
		return t.delegate.SetUserAttr(ctx, key, value)
	})
}

func (t *Trial) SetSystemAttr(ctx context.Context, key string, value domain.Value) error {
	return t.mutate(ctx, func() error {
		return t.delegate.SetSystemAttr(ctx, key, value)
	})
}

func (t *Trial) Number(ctx context.Context) (int64, error) {
	if err := t.ready(); err != nil {
		return 0, err
	}
	return broadcastInt(ctx, t.group, func() (int64, error) {
		return t.delegate.Number(ctx)
	})
}

func (t *Trial) Params(ctx context.Context) (map[string]domain.Value, error) {
	if err := t.ready(); err != nil {
		return nil, err
	}
	return broadcastObject(ctx, t.group, func() (map[string]domain.Value, error) {
		return t.delegate.Params(ctx)
	})
}

func (t *Trial) Distributions(ctx context.Context) (map[string]domain.Distribution, error) {
	if err := t.ready(); err != nil {
		return nil, err
	}
	return broadcastObject(ctx, t.group, func() (map[string]domain.Distribution, error) {
		return t.delegate.Distributions(ctx)
	})
}

func (t *Trial) UserAttrs(ctx context.Context) (map[string]domain.Value, error) {
	if err := t.ready(); err != nil {
		return nil, err
	}
	return broadcastObject(ctx, t.group, func() (map[string]domain.Value, error) {
		return t.delegate.UserAttrs(ctx)
	})
}

func (t *Trial) SystemAttrs(ctx context.Context) (map[string]domain.Value, error) {
	if err := t.ready(); err != nil {
		return nil, err
	}
	return broadcastObject(ctx, t.group, func() (map[string]domain.Value, error) {
		return t.delegate.SystemAttrs(ctx)
	})
}

// startStamp is the wire form of the optional start time. The codec flattens
// nil pointers to a zero value, so absence must travel as an explicit flag.
type startStamp struct {
	Set   bool
	Nanos int64
}

// StartTime travels as flagged nanoseconds; a trial that never started
// decodes back to nil on every rank.
func (t *Trial) StartTime(ctx context.Context) (*time.Time, error) {
	if err := t.ready(); err != nil {
		return nil, err
	}
	stamp, err := broadcastObject(ctx, t.group, func() (startStamp, error) {
		ts, err := t.delegate.StartTime(ctx)
		if err != nil || ts == nil {
			return startStamp{}, err
		}
		return startStamp{Set: true, Nanos: ts.UnixNano()}, nil
	})
	if err != nil {
		return nil, err
	}
	if !stamp.Set {
		return nil, nil
	}
	ts := time.Unix(0, stamp.Nanos)
	return &ts, nil
}

// mutate is the shared path of the side-effecting operations: the leader
// applies the write, then all ranks meet at a barrier. The barrier runs
// even when the leader's write failed, so the group never desynchronizes
// over a storage error.
func (t *Trial) mutate(ctx context.Context, apply func() error) error {
	if err := t.ready(); err != nil {
		return err
	}
	var applyErr error
	if t.group.Rank() == collective.LeaderRank {
		applyErr = apply()
		if applyErr != nil {
			t.log.Error("Leader-side mutation failed", "error", applyErr)
		}
	}
	if err := t.group.Barrier(ctx); err != nil {
		return err
	}
	return applyErr
}
