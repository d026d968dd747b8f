package device

import (
	"sync"
	"time"
)

// MockClient implements Client for tests. It records every move command and
// can be configured to fail. Exported for use by tests in other packages.
type MockClient struct {
	mu sync.Mutex

	// moveFunc, when set, overrides the default MoveServos behavior.
	moveFunc func(moves []ServoMove, duration time.Duration) error

	moveCalls  []MockMoveCall
	closeCalls int
}

// MockMoveCall records a MoveServos call.
type MockMoveCall struct {
	Moves    []ServoMove
	Duration time.Duration
}

// NewMockClient creates a new MockClient.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// SetMoveFunc overrides MoveServos behavior, typically to inject failures.
func (m *MockClient) SetMoveFunc(fn func(moves []ServoMove, duration time.Duration) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moveFunc = fn
}

// MoveServos records the call and runs the configured override, if any.
func (m *MockClient) MoveServos(moves []ServoMove, duration time.Duration) error {
	m.mu.Lock()
	recorded := make([]ServoMove, len(moves))
	copy(recorded, moves)
	m.moveCalls = append(m.moveCalls, MockMoveCall{Moves: recorded, Duration: duration})
	fn := m.moveFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(moves, duration)
	}
	return nil
}

// Close records the call and returns nil.
func (m *MockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeCalls++
	return nil
}

// MoveCalls returns a copy of the recorded MoveServos calls.
func (m *MockClient) MoveCalls() []MockMoveCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]MockMoveCall, len(m.moveCalls))
	copy(calls, m.moveCalls)
	return calls
}

// CloseCalls returns how many times Close was called.
func (m *MockClient) CloseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeCalls
}
