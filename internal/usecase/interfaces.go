package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kindredhq/ledgerd/internal/domain"
)

// AccountWrite is a staged balance update carrying the version observed when
// the account was read. It is the unit of the store's compare-and-swap.
type AccountWrite struct {
	AccountID       string
	ExpectedVersion int64
	NewBalance      decimal.Decimal
	UpdatedAt       time.Time
}

// AccountStore defines durable account state with optimistic concurrency.
//
// No locks are held across the read-stage-apply gap; Apply's version check is
// the sole concurrency-control primitive, so unrelated accounts commit in
// parallel while racing writes to the same account fail with a conflict.
type AccountStore interface {
	Create(ctx context.Context, account *domain.Account) error
	// Read returns a snapshot of the account, never blocking on writers.
	Read(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	// Apply commits all writes and appends all events as a single atomic
	// unit. If any write's ExpectedVersion does not match the stored
	// version, nothing is applied and domain.ErrConflict is returned.
	// On success, every account's version is bumped and each event's
	// Sequence is populated with its commit-order position.
	Apply(ctx context.Context, writes []AccountWrite, events []*domain.BalanceChangeEvent) error
}

// EventLog reads committed balance-change events in commit order.
type EventLog interface {
	// ReadFrom returns up to limit events with Sequence greater than
	// cursor, together with the cursor to resume from. The sequence is
	// append-only: events are never revised or removed.
	ReadFrom(ctx context.Context, cursor int64, limit int) ([]*domain.BalanceChangeEvent, int64, error)
	LatestSequence(ctx context.Context) (int64, error)
}

// AuthorizationGate answers whether a principal may perform an operation on
// an account. The engine consumes the decision; it never implements policy.
type AuthorizationGate interface {
	Authorize(ctx context.Context, principal domain.Principal, op domain.Operation, accountID string) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// CheckpointStore persists per-subscriber event-log cursors so a restarted
// subscriber resumes from its last acknowledged sequence.
type CheckpointStore interface {
	Get(ctx context.Context, subscriber string) (int64, error)
	Set(ctx context.Context, subscriber string, sequence int64) error
}
