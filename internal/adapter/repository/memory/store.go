// Package memory provides an in-memory account store and event log. It backs
// tests and single-process deployments; the postgres adapter is the durable
// counterpart with the same semantics.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/kindredhq/ledgerd/internal/domain"
	"github.com/kindredhq/ledgerd/internal/usecase"
)

// Store implements usecase.AccountStore and usecase.EventLog in memory.
//
// Reads hand out clones and never block behind a committer for longer than
// the map access itself. Apply is the only mutating path: it performs the
// version check and the event append under one lock, so event sequence order
// is exactly commit order.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	events   []*domain.BalanceChangeEvent
	lastSeq  int64
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*domain.Account),
	}
}

// Create adds a new account.
func (s *Store) Create(ctx context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.ID]; ok {
		return domain.ErrAccountExists
	}

	s.accounts[account.ID] = account.Clone()

	return nil
}

// Read returns a snapshot of the account.
func (s *Store) Read(ctx context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return account.Clone(), nil
}

// List returns accounts ordered by ID with pagination.
func (s *Store) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.accounts))
	for id := range s.accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if offset >= len(ids) {
		return nil, nil
	}

	ids = ids[offset:]
	if len(ids) > limit {
		ids = ids[:limit]
	}

	accounts := make([]*domain.Account, 0, len(ids))
	for _, id := range ids {
		accounts = append(accounts, s.accounts[id].Clone())
	}

	return accounts, nil
}

// Apply commits writes and events as one atomic unit. Every version must
// match or nothing is applied.
func (s *Store) Apply(ctx context.Context, writes []usecase.AccountWrite, events []*domain.BalanceChangeEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range writes {
		account, ok := s.accounts[w.AccountID]
		if !ok {
			return domain.ErrAccountNotFound
		}
		if account.Version != w.ExpectedVersion {
			return domain.ErrConflict
		}
	}

	for _, w := range writes {
		account := s.accounts[w.AccountID]
		account.Balance = w.NewBalance
		account.Version++
		account.UpdatedAt = w.UpdatedAt
	}

	for _, event := range events {
		s.lastSeq++
		event.Sequence = s.lastSeq
		s.events = append(s.events, event)
	}

	return nil
}

// ReadFrom returns up to limit events after cursor, in commit order.
func (s *Store) ReadFrom(ctx context.Context, cursor int64, limit int) ([]*domain.BalanceChangeEvent, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	next := cursor

	var out []*domain.BalanceChangeEvent
	for _, event := range s.events {
		if event.Sequence <= cursor {
			continue
		}

		out = append(out, event)
		next = event.Sequence

		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out, next, nil
}

// LatestSequence returns the sequence of the most recent commit.
func (s *Store) LatestSequence(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastSeq, nil
}
