package domain

type DistributionKind uint8

const (
	DistFloat DistributionKind = iota
	DistInt
	DistCategorical
)

// Distribution describes the domain a parameter was suggested from.
// It is a single flat struct rather than an interface hierarchy so that
// trial records stay directly encodable; only the fields matching Kind
// are meaningful.
type Distribution struct {
	Kind DistributionKind

	// Float domain
	Low  float64
	High float64
	Step float64 // 0 means continuous
	Log  bool

	// Int domain
	IntLow  int64
	IntHigh int64
	IntStep int64

	// Categorical domain, choices may mix kinds
	Choices []Value
}

func FloatDistribution(low, high float64) Distribution {
	return Distribution{Kind: DistFloat, Low: low, High: high}
}

func FloatLogDistribution(low, high float64) Distribution {
	return Distribution{Kind: DistFloat, Low: low, High: high, Log: true}
}

func FloatStepDistribution(low, high, step float64) Distribution {
	return Distribution{Kind: DistFloat, Low: low, High: high, Step: step}
}

func IntDistribution(low, high, step int64, log bool) Distribution {
	if step <= 0 {
		step = 1
	}
	return Distribution{Kind: DistInt, IntLow: low, IntHigh: high, IntStep: step, Log: log}
}

func CategoricalDistribution(choices ...Value) Distribution {
	return Distribution{Kind: DistCategorical, Choices: choices}
}

// Contains reports whether a previously recorded value is inside the domain.
func (d Distribution) Contains(v Value) bool {
	switch d.Kind {
	case DistFloat:
		return v.Kind == KindFloat && v.Float >= d.Low && v.Float <= d.High
	case DistInt:
		return v.Kind == KindInt && v.Int >= d.IntLow && v.Int <= d.IntHigh
	case DistCategorical:
		for _, c := range d.Choices {
			if c == v {
				return true
			}
		}
		return false
	default:
		return false
	}
}
