//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"tune-lab/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes, avoiding the need for
// manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Trial is the operation set shared by the leader-local trial and its
// synchronized facade. Every method may be called on any rank; the facade
// guarantees all ranks observe identical return values. Methods carry a
// context because the distributed rendition blocks in collective calls.
type Trial interface {
	SuggestFloat(ctx context.Context, name string, low, high float64) (float64, error)
	SuggestFloatLog(ctx context.Context, name string, low, high float64) (float64, error)
	SuggestFloatStep(ctx context.Context, name string, low, high, step float64) (float64, error)
	SuggestInt(ctx context.Context, name string, low, high, step int64, log bool) (int64, error)
	SuggestCategorical(ctx context.Context, name string, choices []domain.Value) (domain.Value, error)

	Report(ctx context.Context, value float64, step int64) error
	ShouldPrune(ctx context.Context) (bool, error)
	SetUserAttr(ctx context.Context, key string, value domain.Value) error
	SetSystemAttr(ctx context.Context, key string, value domain.Value) error

	Number(ctx context.Context) (int64, error)
	Params(ctx context.Context) (map[string]domain.Value, error)
	Distributions(ctx context.Context) (map[string]domain.Distribution, error)
	UserAttrs(ctx context.Context) (map[string]domain.Value, error)
	SystemAttrs(ctx context.Context) (map[string]domain.Value, error)
	StartTime(ctx context.Context) (*time.Time, error)
}
