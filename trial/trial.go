// Package trial implements the leader-local trial: the only object in the
// group that samples new parameters and records results. Followers never
// hold one; they reach it through the synchronized facade in distributed.
package trial

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tune-lab/domain"
	"tune-lab/repositories"
	"tune-lab/sampler"
)

type Trial struct {
	mu         sync.Mutex
	log        *slog.Logger
	sampler    *sampler.Random
	repository repositories.ITrialRepository
	pruner     Pruner
	record     domain.TrialRecord
}

func New(
	record domain.TrialRecord,
	s *sampler.Random,
	repository repositories.ITrialRepository,
	pruner Pruner,
	log *slog.Logger,
) *Trial {
	if pruner == nil {
		pruner = NeverPrune{}
	}
	return &Trial{
		log:        log,
		sampler:    s,
		repository: repository,
		pruner:     pruner,
		record:     record,
	}
}

// suggest is the shared path of every Suggest* method: re-suggesting an
// existing name returns the recorded value unchanged, otherwise a fresh
// sample is drawn, recorded and persisted.
func (t *Trial) suggest(name string, dist domain.Distribution, draw func() (domain.Value, error)) (domain.Value, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if v, ok := t.record.Params[name]; ok {
		return v, nil
	}
	v, err := draw()
	if err != nil {
		return domain.Nil(), err
	}
	t.record.Params[name] = v
	t.record.Distributions[name] = dist
	if err := t.repository.Save(t.record); err != nil {
		return domain.Nil(), fmt.Errorf("persisting suggestion %q: %w", name, err)
	}
	t.log.Debug("Parameter suggested", "trial", t.record.Number, "name", name, "value", v.String())
	return v, nil
}

func (t *Trial) SuggestFloat(_ context.Context, name string, low, high float64) (float64, error) {
	d := domain.FloatDistribution(low, high)
	v, err := t.suggest(name, d, func() (domain.Value, error) {
		return domain.Float(t.sampler.SampleFloat(d)), nil
	})
	return v.Float, err
}

func (t *Trial) SuggestFloatLog(_ context.Context, name string, low, high float64) (float64, error) {
	d := domain.FloatLogDistribution(low, high)
	v, err := t.suggest(name, d, func() (domain.Value, error) {
		return domain.Float(t.sampler.SampleFloat(d)), nil
	})
	return v.Float, err
}

func (t *Trial) SuggestFloatStep(_ context.Context, name string, low, high, step float64) (float64, error) {
	d := domain.FloatStepDistribution(low, high, step)
	v, err := t.suggest(name, d, func() (domain.Value, error) {
		return domain.Float(t.sampler.SampleFloat(d)), nil
	})
	return v.Float, err
}

func (t *Trial) SuggestInt(_ context.Context, name string, low, high, step int64, log bool) (int64, error) {
	d := domain.IntDistribution(low, high, step, log)
	v, err := t.suggest(name, d, func() (domain.Value, error) {
		return domain.Int(t.sampler.SampleInt(d)), nil
	})
	return v.Int, err
}

func (t *Trial) SuggestCategorical(_ context.Context, name string, choices []domain.Value) (domain.Value, error) {
	d := domain.CategoricalDistribution(choices...)
	return t.suggest(name, d, func() (domain.Value, error) {
		return t.sampler.SampleCategorical(d)
	})
}

// Report records an intermediate objective value at a step index.
func (t *Trial) Report(_ context.Context, value float64, step int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.record.Intermediate[step] = value
	return t.repository.Save(t.record)
}

func (t *Trial) ShouldPrune(_ context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pruner.ShouldPrune(t.record)
}

func (t *Trial) SetUserAttr(_ context.Context, key string, value domain.Value) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.record.UserAttrs[key] = value
	return t.repository.Save(t.record)
}

func (t *Trial) SetSystemAttr(_ context.Context, key string, value domain.Value) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.record.SystemAttrs[key] = value
	return t.repository.Save(t.record)
}

// Complete marks the trial finished. Pruned trials keep their intermediate
// history; that is what the median pruner feeds on later.
func (t *Trial) Complete(state domain.TrialState) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.record.State = state
	return t.repository.Save(t.record)
}

func (t *Trial) Number(_ context.Context) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.record.Number, nil
}

func (t *Trial) Params(_ context.Context) (map[string]domain.Value, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return copyMap(t.record.Params), nil
}

func (t *Trial) Distributions(_ context.Context) (map[string]domain.Distribution, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return copyMap(t.record.Distributions), nil
}

func (t *Trial) UserAttrs(_ context.Context) (map[string]domain.Value, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return copyMap(t.record.UserAttrs), nil
}

func (t *Trial) SystemAttrs(_ context.Context) (map[string]domain.Value, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return copyMap(t.record.SystemAttrs), nil
}

func (t *Trial) StartTime(_ context.Context) (*time.Time, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.record.StartTime(), nil
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
