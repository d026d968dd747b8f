package runner

import (
	"context"
	"sync"
)

// RecorderInvoker implements ActionInvoker for tests. It records every call
// and can be configured to fail on specific calls. Exported for use by tests
// in other packages.
type RecorderInvoker struct {
	mu sync.Mutex

	// invokeFunc, when set, decides the outcome of each call. The call is
	// recorded either way.
	invokeFunc func(ctx context.Context, mode Mode, target string) error

	calls []RecordedCall
}

// RecordedCall records one Invoke call.
type RecordedCall struct {
	Mode   Mode
	Target string
}

// NewRecorderInvoker creates a RecorderInvoker that accepts every call.
func NewRecorderInvoker() *RecorderInvoker {
	return &RecorderInvoker{}
}

// SetInvokeFunc overrides the outcome of subsequent calls.
func (r *RecorderInvoker) SetInvokeFunc(fn func(ctx context.Context, mode Mode, target string) error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invokeFunc = fn
}

// FailOnCall configures the invoker to fail the n-th call (1-based) with err
// and accept all others.
func (r *RecorderInvoker) FailOnCall(n int, err error) {
	count := 0
	r.SetInvokeFunc(func(context.Context, Mode, string) error {
		count++
		if count == n {
			return err
		}
		return nil
	})
}

// Invoke records the call and runs the configured outcome, if any.
func (r *RecorderInvoker) Invoke(ctx context.Context, mode Mode, target string) error {
	r.mu.Lock()
	r.calls = append(r.calls, RecordedCall{Mode: mode, Target: target})
	fn := r.invokeFunc
	r.mu.Unlock()

	if fn != nil {
		return fn(ctx, mode, target)
	}
	return nil
}

// Calls returns a copy of the recorded calls.
func (r *RecorderInvoker) Calls() []RecordedCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	calls := make([]RecordedCall, len(r.calls))
	copy(calls, r.calls)
	return calls
}
