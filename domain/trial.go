package domain

import "time"

type TrialState uint8

const (
	TrialRunning TrialState = iota
	TrialComplete
	TrialPruned
	TrialFailed
)

func (s TrialState) String() string {
	switch s {
	case TrialRunning:
		return "RUNNING"
	case TrialComplete:
		return "COMPLETE"
	case TrialPruned:
		return "PRUNED"
	case TrialFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// TrialRecord is the persisted snapshot of one trial.
// StartedAt is kept as unix nanoseconds (0 = not started) so the record can
// be serialized without a time.Time special case.
type TrialRecord struct {
	ID            string
	Study         string
	Number        int64
	State         TrialState
	Params        map[string]Value
	Distributions map[string]Distribution
	UserAttrs     map[string]Value
	SystemAttrs   map[string]Value
	Intermediate  map[int64]float64
	StartedAt     int64
}

// StartTime converts StartedAt back to a wall-clock time, nil when unset.
func (t TrialRecord) StartTime() *time.Time {
	if t.StartedAt == 0 {
		return nil
	}
	ts := time.Unix(0, t.StartedAt).UTC()
	return &ts
}
