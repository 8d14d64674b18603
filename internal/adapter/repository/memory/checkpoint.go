package memory

import (
	"context"
	"sync"
)

// CheckpointStore is an in-memory usecase.CheckpointStore. Cursors do not
// survive a restart, so subscribers replay the log from the beginning.
type CheckpointStore struct {
	mu      sync.Mutex
	cursors map[string]int64
}

// NewCheckpointStore creates a new CheckpointStore.
func NewCheckpointStore() *CheckpointStore {
	return &CheckpointStore{
		cursors: make(map[string]int64),
	}
}

// Get returns the stored cursor for a subscriber, or zero if none exists.
func (s *CheckpointStore) Get(ctx context.Context, subscriber string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cursors[subscriber], nil
}

// Set stores the cursor for a subscriber.
func (s *CheckpointStore) Set(ctx context.Context, subscriber string, cursor int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursors[subscriber] = cursor

	return nil
}
