package telemetry

import (
	"context"
	"sync"
)

// MockSink is a deterministic Sink for testing. It records every record
// it receives and returns Err, if set.
type MockSink struct {
	mu      sync.Mutex
	Err     error
	Records []Record

	// Block, when non-nil, makes Send wait until it is closed or the
	// context is done.
	Block chan struct{}
}

func (m *MockSink) Send(ctx context.Context, rec Record) error {
	if m.Block != nil {
		select {
		case <-m.Block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = append(m.Records, rec)
	return m.Err
}

// CallCount returns the number of Send calls that completed.
func (m *MockSink) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Records)
}

// Snapshot returns a copy of the recorded records.
func (m *MockSink) Snapshot() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, len(m.Records))
	copy(out, m.Records)
	return out
}
