package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kindredhq/ledgerd/internal/domain"
)

// Engine validates a transaction against account snapshots and stages the
// writes and events a commit would apply. It is pure: it never touches the
// store, so a rejection here leaves no trace anywhere.
type Engine struct {
	idGen IDGenerator
}

// NewEngine creates a new Engine.
func NewEngine(idGen IDGenerator) *Engine {
	return &Engine{idGen: idGen}
}

// Plan is the staged outcome of a validated transaction: the version-checked
// writes to attempt and the events to append with them.
type Plan struct {
	Writes []AccountWrite
	Events []*domain.BalanceChangeEvent
}

// Stage validates tx against the given snapshots and builds its commit plan.
// Snapshots are keyed by account ID and must cover every account tx touches.
func (e *Engine) Stage(tx domain.Transaction, accounts map[string]*domain.Account, now time.Time) (*Plan, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	switch tx.Kind {
	case domain.KindDebit:
		return e.stageDebit(tx, accounts, now)
	case domain.KindCredit:
		return e.stageCredit(tx, accounts, now)
	case domain.KindTransfer:
		return e.stageTransfer(tx, accounts, now)
	default:
		return nil, domain.ErrUnknownTransactionKind
	}
}

func (e *Engine) stageDebit(tx domain.Transaction, accounts map[string]*domain.Account, now time.Time) (*Plan, error) {
	account := accounts[tx.AccountID]
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	if err := account.ValidateDebit(tx.Amount); err != nil {
		return nil, err
	}

	newBalance := account.ApplyDebit(tx.Amount)

	return &Plan{
		Writes: []AccountWrite{{
			AccountID:       account.ID,
			ExpectedVersion: account.Version,
			NewBalance:      newBalance,
			UpdatedAt:       now,
		}},
		Events: []*domain.BalanceChangeEvent{
			e.newEvent(tx.ID, account.ID, account.Balance, newBalance, now),
		},
	}, nil
}

func (e *Engine) stageCredit(tx domain.Transaction, accounts map[string]*domain.Account, now time.Time) (*Plan, error) {
	account := accounts[tx.AccountID]
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	if err := account.ValidateCredit(tx.Amount); err != nil {
		return nil, err
	}

	newBalance := account.ApplyCredit(tx.Amount)

	return &Plan{
		Writes: []AccountWrite{{
			AccountID:       account.ID,
			ExpectedVersion: account.Version,
			NewBalance:      newBalance,
			UpdatedAt:       now,
		}},
		Events: []*domain.BalanceChangeEvent{
			e.newEvent(tx.ID, account.ID, account.Balance, newBalance, now),
		},
	}, nil
}

func (e *Engine) stageTransfer(tx domain.Transaction, accounts map[string]*domain.Account, now time.Time) (*Plan, error) {
	from := accounts[tx.FromAccountID]
	to := accounts[tx.ToAccountID]

	if from == nil || to == nil {
		return nil, domain.ErrAccountNotFound
	}

	// A transfer may not overdraw the source; the destination side has no
	// ceiling check.
	if err := from.ValidateDebit(tx.Amount); err != nil {
		return nil, err
	}

	fromNewBalance := from.ApplyDebit(tx.Amount)
	toNewBalance := to.ApplyCredit(tx.Amount)

	// Each event references its own account's before/after balances.
	return &Plan{
		Writes: []AccountWrite{
			{
				AccountID:       from.ID,
				ExpectedVersion: from.Version,
				NewBalance:      fromNewBalance,
				UpdatedAt:       now,
			},
			{
				AccountID:       to.ID,
				ExpectedVersion: to.Version,
				NewBalance:      toNewBalance,
				UpdatedAt:       now,
			},
		},
		Events: []*domain.BalanceChangeEvent{
			e.newEvent(tx.ID, from.ID, from.Balance, fromNewBalance, now),
			e.newEvent(tx.ID, to.ID, to.Balance, toNewBalance, now),
		},
	}, nil
}

func (e *Engine) newEvent(txID, accountID string, oldBalance, newBalance decimal.Decimal, now time.Time) *domain.BalanceChangeEvent {
	return &domain.BalanceChangeEvent{
		ID:            e.idGen.Generate(),
		TransactionID: txID,
		AccountID:     accountID,
		OldBalance:    oldBalance,
		NewBalance:    newBalance,
		OccurredAt:    now,
	}
}
