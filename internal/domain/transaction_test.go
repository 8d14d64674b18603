package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      Transaction
		wantErr error
	}{
		{name: "valid debit", tx: NewDebit("1", decimal.NewFromInt(10)), wantErr: nil},
		{name: "valid credit", tx: NewCredit("1", decimal.NewFromInt(10)), wantErr: nil},
		{name: "valid transfer", tx: NewTransfer("1", "2", decimal.NewFromInt(10)), wantErr: nil},
		{name: "zero amount", tx: NewDebit("1", decimal.Zero), wantErr: ErrInvalidAmount},
		{name: "negative amount", tx: NewCredit("1", decimal.NewFromInt(-5)), wantErr: ErrInvalidAmount},
		{name: "zero amount transfer", tx: NewTransfer("1", "2", decimal.Zero), wantErr: ErrInvalidAmount},
		{name: "transfer to self", tx: NewTransfer("1", "1", decimal.NewFromInt(10)), wantErr: ErrSameAccount},
		{name: "debit without account", tx: NewDebit("", decimal.NewFromInt(10)), wantErr: ErrAccountNotFound},
		{name: "transfer missing endpoint", tx: NewTransfer("1", "", decimal.NewFromInt(10)), wantErr: ErrAccountNotFound},
		{
			name:    "unknown kind",
			tx:      Transaction{Kind: "mint", AccountID: "1", Amount: decimal.NewFromInt(10)},
			wantErr: ErrUnknownTransactionKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransaction_AccountIDs(t *testing.T) {
	debit := NewDebit("1", decimal.NewFromInt(10))
	if ids := debit.AccountIDs(); len(ids) != 1 || ids[0] != "1" {
		t.Errorf("debit AccountIDs() = %v", ids)
	}

	transfer := NewTransfer("1", "2", decimal.NewFromInt(10))
	if ids := transfer.AccountIDs(); len(ids) != 2 || ids[0] != "1" || ids[1] != "2" {
		t.Errorf("transfer AccountIDs() = %v", ids)
	}
}

func TestTransactionStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    TransactionStatus
		to      TransactionStatus
		allowed bool
	}{
		{StatusSubmitted, StatusValidating, true},
		{StatusValidating, StatusApplying, true},
		{StatusValidating, StatusRejected, true},
		{StatusApplying, StatusCommitted, true},
		{StatusApplying, StatusConflicted, true},
		{StatusSubmitted, StatusCommitted, false},
		{StatusRejected, StatusApplying, false},
		{StatusCommitted, StatusConflicted, false},
		{StatusConflicted, StatusValidating, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestTransactionStatus_IsTerminal(t *testing.T) {
	terminal := []TransactionStatus{StatusRejected, StatusCommitted, StatusConflicted}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}

	for _, s := range []TransactionStatus{StatusSubmitted, StatusValidating, StatusApplying} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}
