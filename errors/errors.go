package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrNoDelegate         = fmt.Errorf("leader rank has no trial delegate")
	ErrDelegateOnFollower = fmt.Errorf("non-leader rank must not hold a trial delegate")
	ErrGroupClosed        = fmt.Errorf("process group is closed")
	ErrRankMismatch       = fmt.Errorf("rank outside group bounds")
	ErrSizeMismatch       = fmt.Errorf("broadcast buffer size differs across ranks")
	ErrLeaderCompute      = fmt.Errorf("leader computation failed")
	ErrEmptyChoices       = fmt.Errorf("categorical domain has no choices")
	ErrTrialNotFound      = fmt.Errorf("trial not found")
	ErrWorkerBinNotFound  = fmt.Errorf("worker binary not found")
	ErrWorkerStartFailed  = fmt.Errorf("worker process failed to start")
	ErrLeaderUnreachable  = fmt.Errorf("leader not accepting joins")
)
