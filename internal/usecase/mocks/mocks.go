package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/kindredhq/ledgerd/internal/domain"
	"github.com/kindredhq/ledgerd/internal/usecase"
)

// MockAccountStore is a mock implementation of AccountStore. Without an
// override func it behaves as a working versioned in-memory store, including
// the atomic compare-and-swap on Apply.
type MockAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	events   []*domain.BalanceChangeEvent
	nextSeq  int64

	CreateFunc func(ctx context.Context, account *domain.Account) error
	ReadFunc   func(ctx context.Context, id string) (*domain.Account, error)
	ListFunc   func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	ApplyFunc  func(ctx context.Context, writes []usecase.AccountWrite, events []*domain.BalanceChangeEvent) error
}

func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.ID]; ok {
		return domain.ErrAccountExists
	}
	m.accounts[account.ID] = account.Clone()
	return nil
}

func (m *MockAccountStore) Read(ctx context.Context, id string) (*domain.Account, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc.Clone(), nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountStore) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		accounts = append(accounts, acc.Clone())
	}
	return accounts, nil
}

func (m *MockAccountStore) Apply(ctx context.Context, writes []usecase.AccountWrite, events []*domain.BalanceChangeEvent) error {
	if m.ApplyFunc != nil {
		return m.ApplyFunc(ctx, writes, events)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range writes {
		acc, ok := m.accounts[w.AccountID]
		if !ok {
			return domain.ErrAccountNotFound
		}
		if acc.Version != w.ExpectedVersion {
			return domain.ErrConflict
		}
	}
	for _, w := range writes {
		acc := m.accounts[w.AccountID]
		acc.Balance = w.NewBalance
		acc.Version++
		acc.UpdatedAt = w.UpdatedAt
	}
	for _, ev := range events {
		m.nextSeq++
		ev.Sequence = m.nextSeq
		m.events = append(m.events, ev)
	}
	return nil
}

// Events returns the events appended so far, in commit order.
func (m *MockAccountStore) Events() []*domain.BalanceChangeEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.BalanceChangeEvent, len(m.events))
	copy(out, m.events)
	return out
}

// MockEventLog is a mock implementation of EventLog.
type MockEventLog struct {
	mu     sync.RWMutex
	events []*domain.BalanceChangeEvent

	ReadFromFunc       func(ctx context.Context, cursor int64, limit int) ([]*domain.BalanceChangeEvent, int64, error)
	LatestSequenceFunc func(ctx context.Context) (int64, error)
}

func NewMockEventLog(events ...*domain.BalanceChangeEvent) *MockEventLog {
	return &MockEventLog{events: events}
}

// Append adds events to the log, assigning sequences when unset.
func (m *MockEventLog) Append(events ...*domain.BalanceChangeEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ev := range events {
		if ev.Sequence == 0 {
			ev.Sequence = int64(len(m.events)) + 1
		}
		m.events = append(m.events, ev)
	}
}

func (m *MockEventLog) ReadFrom(ctx context.Context, cursor int64, limit int) ([]*domain.BalanceChangeEvent, int64, error) {
	if m.ReadFromFunc != nil {
		return m.ReadFromFunc(ctx, cursor, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	next := cursor
	var out []*domain.BalanceChangeEvent
	for _, ev := range m.events {
		if ev.Sequence <= cursor {
			continue
		}
		out = append(out, ev)
		next = ev.Sequence
		if len(out) == limit {
			break
		}
	}
	return out, next, nil
}

func (m *MockEventLog) LatestSequence(ctx context.Context) (int64, error) {
	if m.LatestSequenceFunc != nil {
		return m.LatestSequenceFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.events) == 0 {
		return 0, nil
	}
	return m.events[len(m.events)-1].Sequence, nil
}

// MockAuthorizationGate is a mock implementation of AuthorizationGate.
// By default it allows everything.
type MockAuthorizationGate struct {
	AuthorizeFunc func(ctx context.Context, principal domain.Principal, op domain.Operation, accountID string) error
}

func NewMockAuthorizationGate() *MockAuthorizationGate {
	return &MockAuthorizationGate{}
}

func (m *MockAuthorizationGate) Authorize(ctx context.Context, principal domain.Principal, op domain.Operation, accountID string) error {
	if m.AuthorizeFunc != nil {
		return m.AuthorizeFunc(ctx, principal, op, accountID)
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "mock-id-" + strconv.Itoa(m.counter)
}

// MockCheckpointStore is a mock implementation of CheckpointStore.
type MockCheckpointStore struct {
	mu          sync.RWMutex
	checkpoints map[string]int64

	GetFunc func(ctx context.Context, subscriber string) (int64, error)
	SetFunc func(ctx context.Context, subscriber string, sequence int64) error
}

func NewMockCheckpointStore() *MockCheckpointStore {
	return &MockCheckpointStore{
		checkpoints: make(map[string]int64),
	}
}

func (m *MockCheckpointStore) Get(ctx context.Context, subscriber string) (int64, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, subscriber)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.checkpoints[subscriber], nil
}

func (m *MockCheckpointStore) Set(ctx context.Context, subscriber string, sequence int64) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, subscriber, sequence)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkpoints[subscriber] = sequence
	return nil
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu        sync.Mutex
	responses map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		responses: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.responses[key]; ok {
		return true, existing, nil
	}
	if response == nil {
		response = []byte("processing")
	}
	m.responses[key] = response
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[key] = response
	return nil
}
