package trial

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"tune-lab/domain"
	"tune-lab/repositories"
)

// Pruner decides from the recorded history whether a running trial should
// stop early. Evaluated on the leader only; the verdict is broadcast.
type Pruner interface {
	ShouldPrune(record domain.TrialRecord) (bool, error)
}

type NeverPrune struct{}

func (NeverPrune) ShouldPrune(domain.TrialRecord) (bool, error) { return false, nil }

// ThresholdPruner prunes as soon as the latest reported value leaves the
// [Lower, Upper] band. A nil bound is open.
type ThresholdPruner struct {
	Lower *float64
	Upper *float64
}

func (p ThresholdPruner) ShouldPrune(record domain.TrialRecord) (bool, error) {
	_, value, ok := latestReport(record)
	if !ok {
		return false, nil
	}
	if p.Lower != nil && value < *p.Lower {
		return true, nil
	}
	if p.Upper != nil && value > *p.Upper {
		return true, nil
	}
	return false, nil
}

// MedianPruner prunes a trial whose latest report is worse than the median
// of what earlier trials of the same study had reported at the same step.
type MedianPruner struct {
	Repository  repositories.ITrialRepository
	WarmupSteps int64
	// Maximize treats larger reported values as better; default is minimize.
	Maximize bool
}

func (p MedianPruner) ShouldPrune(record domain.TrialRecord) (bool, error) {
	step, value, ok := latestReport(record)
	if !ok || step < p.WarmupSteps {
		return false, nil
	}

	others, err := p.Repository.List(record.Study)
	if err != nil {
		return false, err
	}
	var peers []float64
	for _, other := range others {
		if other.Number == record.Number {
			continue
		}
		if v, ok := other.Intermediate[step]; ok {
			peers = append(peers, v)
		}
	}
	if len(peers) == 0 {
		return false, nil
	}

	sort.Float64s(peers)
	median := stat.Quantile(0.5, stat.Empirical, peers, nil)
	if p.Maximize {
		return value < median, nil
	}
	return value > median, nil
}

// latestReport returns the highest reported step and its value.
func latestReport(record domain.TrialRecord) (int64, float64, bool) {
	found := false
	var step int64
	var value float64
	for s, v := range record.Intermediate {
		if !found || s > step {
			step, value, found = s, v, true
		}
	}
	return step, value, found
}
