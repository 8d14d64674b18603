package postgres

import (
	"context"

	"github.com/kindredhq/ledgerd/internal/domain"
	"github.com/kindredhq/ledgerd/internal/usecase"
)

// RetryingAccountStore wraps an AccountStore with the transient-error
// retrier. Deadlocks and serialization failures are retried; domain errors,
// including domain.ErrConflict, pass through on the first attempt.
type RetryingAccountStore struct {
	inner   usecase.AccountStore
	retrier *Retrier
}

// NewRetryingAccountStore creates a new RetryingAccountStore.
func NewRetryingAccountStore(inner usecase.AccountStore, retrier *Retrier) *RetryingAccountStore {
	return &RetryingAccountStore{inner: inner, retrier: retrier}
}

// Create inserts a new account, retrying transient failures.
func (s *RetryingAccountStore) Create(ctx context.Context, account *domain.Account) error {
	return s.retrier.Retry(ctx, func() error {
		return s.inner.Create(ctx, account)
	})
}

// Read retrieves an account by ID, retrying transient failures.
func (s *RetryingAccountStore) Read(ctx context.Context, id string) (*domain.Account, error) {
	var account *domain.Account

	err := s.retrier.Retry(ctx, func() error {
		var err error
		account, err = s.inner.Read(ctx, id)
		return err
	})

	return account, err
}

// List lists accounts, retrying transient failures.
func (s *RetryingAccountStore) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	var accounts []*domain.Account

	err := s.retrier.Retry(ctx, func() error {
		var err error
		accounts, err = s.inner.List(ctx, limit, offset)
		return err
	})

	return accounts, err
}

// Apply commits a batch of writes, retrying deadlocks and serialization
// failures. Concurrent transfers in opposite directions lock rows in
// opposite order, so 40P01 is an expected outcome here rather than a bug.
func (s *RetryingAccountStore) Apply(ctx context.Context, writes []usecase.AccountWrite, events []*domain.BalanceChangeEvent) error {
	return s.retrier.Retry(ctx, func() error {
		return s.inner.Apply(ctx, writes, events)
	})
}
