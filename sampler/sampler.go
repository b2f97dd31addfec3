// Package sampler draws independent random suggestions within a declared
// parameter domain. It holds no trial state: idempotence of repeated
// suggestions for the same name is the trial's responsibility.
package sampler

import (
	"math"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"tune-lab/domain"
	"tune-lab/errors"
)

type Random struct {
	src xrand.Source
	rng *xrand.Rand
}

func NewRandom(seed uint64) *Random {
	src := xrand.NewSource(seed)
	return &Random{src: src, rng: xrand.New(src)}
}

// SampleFloat draws from a continuous, stepped or log-scaled float domain.
// Stepped domains are quantized to low + k*step and clamped into bounds.
func (r *Random) SampleFloat(d domain.Distribution) float64 {
	if d.Log {
		u := distuv.Uniform{Min: math.Log(d.Low), Max: math.Log(d.High), Src: r.src}
		return clamp(math.Exp(u.Rand()), d.Low, d.High)
	}
	u := distuv.Uniform{Min: d.Low, Max: d.High, Src: r.src}
	v := u.Rand()
	if d.Step > 0 {
		k := math.Round((v - d.Low) / d.Step)
		v = d.Low + k*d.Step
	}
	return clamp(v, d.Low, d.High)
}

// SampleInt draws from an integer domain, honouring step and log scale.
func (r *Random) SampleInt(d domain.Distribution) int64 {
	low, high, step := d.IntLow, d.IntHigh, d.IntStep
	if step <= 0 {
		step = 1
	}
	if d.Log {
		u := distuv.Uniform{Min: math.Log(float64(low)), Max: math.Log(float64(high)), Src: r.src}
		v := int64(math.Round(math.Exp(u.Rand())))
		return clampInt(v, low, high)
	}
	// Draw an index over the quantized grid so every step value is equally likely.
	buckets := (high-low)/step + 1
	idx := int64(r.rng.Intn(int(buckets)))
	return clampInt(low+idx*step, low, high)
}

// SampleCategorical picks one choice uniformly. Choices may mix kinds.
func (r *Random) SampleCategorical(d domain.Distribution) (domain.Value, error) {
	if len(d.Choices) == 0 {
		return domain.Nil(), errors.ErrEmptyChoices
	}
	return d.Choices[r.rng.Intn(len(d.Choices))], nil
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func clampInt(v, low, high int64) int64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
