package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"tune-lab/domain"
	"tune-lab/errors"
)

func Test_SampleFloat_StaysInBounds(t *testing.T) {
	req := require.New(t)
	r := NewRandom(42)
	d := domain.FloatDistribution(-5, 5)
	for i := 0; i < 1000; i++ {
		v := r.SampleFloat(d)
		req.GreaterOrEqual(v, -5.0)
		req.LessOrEqual(v, 5.0)
	}
}

func Test_SampleFloat_LogScale(t *testing.T) {
	req := require.New(t)
	r := NewRandom(42)
	d := domain.FloatLogDistribution(1e-5, 1e-1)
	for i := 0; i < 1000; i++ {
		v := r.SampleFloat(d)
		req.GreaterOrEqual(v, 1e-5)
		req.LessOrEqual(v, 1e-1)
	}
}

func Test_SampleFloat_Quantized(t *testing.T) {
	req := require.New(t)
	r := NewRandom(7)
	d := domain.FloatStepDistribution(0, 1, 0.1)
	for i := 0; i < 200; i++ {
		v := r.SampleFloat(d)
		k := (v - d.Low) / d.Step
		req.InDelta(math.Round(k), k, 1e-9, "value %v is not on the step grid", v)
	}
}

func Test_SampleInt_StepGrid(t *testing.T) {
	req := require.New(t)
	r := NewRandom(7)
	d := domain.IntDistribution(4, 20, 4, false)
	for i := 0; i < 200; i++ {
		v := r.SampleInt(d)
		req.GreaterOrEqual(v, int64(4))
		req.LessOrEqual(v, int64(20))
		req.Zero((v - 4) % 4)
	}
}

func Test_SampleCategorical(t *testing.T) {
	req := require.New(t)
	r := NewRandom(1)
	d := domain.CategoricalDistribution(domain.String("adam"), domain.Int(10), domain.Float(0.5))
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		v, err := r.SampleCategorical(d)
		req.NoError(err)
		req.True(d.Contains(v))
		seen[v.String()] = true
	}
	req.Len(seen, 3, "every choice should eventually be drawn")
}

func Test_SampleCategorical_Empty(t *testing.T) {
	req := require.New(t)
	r := NewRandom(1)
	_, err := r.SampleCategorical(domain.CategoricalDistribution())
	req.ErrorIs(err, errors.ErrEmptyChoices)
}
