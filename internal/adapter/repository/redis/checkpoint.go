package redis

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// CheckpointStore implements usecase.CheckpointStore using Redis. Each event
// subscriber persists the sequence of the last event it handled so delivery
// resumes from there after a restart.
type CheckpointStore struct {
	client *redis.Client
	prefix string
}

// NewCheckpointStore creates a new CheckpointStore.
func NewCheckpointStore(client *redis.Client) *CheckpointStore {
	return &CheckpointStore{
		client: client,
		prefix: "checkpoint:",
	}
}

// Get returns the stored cursor for a subscriber, or zero if none exists.
func (s *CheckpointStore) Get(ctx context.Context, subscriber string) (int64, error) {
	val, err := s.client.Get(ctx, s.prefix+subscriber).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, err
	}

	cursor, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}

	return cursor, nil
}

// Set stores the cursor for a subscriber.
func (s *CheckpointStore) Set(ctx context.Context, subscriber string, cursor int64) error {
	return s.client.Set(ctx, s.prefix+subscriber, strconv.FormatInt(cursor, 10), 0).Err()
}
