package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind identifies the balance mutation a transaction performs.
type TransactionKind string

const (
	KindDebit    TransactionKind = "debit"
	KindCredit   TransactionKind = "credit"
	KindTransfer TransactionKind = "transfer"
)

// Transaction is a submitted balance mutation. Exactly one of the account
// fields is populated for debit/credit; transfers carry both endpoints.
type Transaction struct {
	ID            string
	Kind          TransactionKind
	AccountID     string
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	SubmittedAt   time.Time
}

// NewDebit builds a debit transaction against a single account.
func NewDebit(accountID string, amount decimal.Decimal) Transaction {
	return Transaction{Kind: KindDebit, AccountID: accountID, Amount: amount}
}

// NewCredit builds a credit transaction against a single account.
func NewCredit(accountID string, amount decimal.Decimal) Transaction {
	return Transaction{Kind: KindCredit, AccountID: accountID, Amount: amount}
}

// NewTransfer builds a transfer moving amount between two accounts.
func NewTransfer(fromAccountID, toAccountID string, amount decimal.Decimal) Transaction {
	return Transaction{
		Kind:          KindTransfer,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        amount,
	}
}

// Validate checks the transaction shape before any store access.
func (t Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	switch t.Kind {
	case KindDebit, KindCredit:
		if t.AccountID == "" {
			return ErrAccountNotFound
		}
	case KindTransfer:
		if t.FromAccountID == "" || t.ToAccountID == "" {
			return ErrAccountNotFound
		}
		if t.FromAccountID == t.ToAccountID {
			return ErrSameAccount
		}
	default:
		return ErrUnknownTransactionKind
	}

	return nil
}

// AccountIDs returns the accounts the transaction touches.
func (t Transaction) AccountIDs() []string {
	if t.Kind == KindTransfer {
		return []string{t.FromAccountID, t.ToAccountID}
	}
	return []string{t.AccountID}
}
